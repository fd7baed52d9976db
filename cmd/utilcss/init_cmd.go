package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .utilcss.yaml config file",
	Long:  `Create a .utilcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# utilcss configuration
# Docs: https://github.com/yacobolo/utilcss

# Files scanned for class names
content:
  - "web/**/*.{html,templ}"

output: static/css/utilities.css
dark-mode: media          # media | class | <marker class>
minify: false
output-format: summary    # summary | full | json | quiet

# Classes generated even when not found in content
safelist: []

theme:
  # Theme files merged over the defaults, relative to this file
  presets: []
  # Whole categories replaced
  override: {}
  # Keys merged into the defaults; extension wins
  extend:
    colors:
      brand: "#1da1f2"

# Plugins, in priority order: the first plugin to claim a class wins
plugins: []
#  - name: scrollbars
#    utilities:
#      no-scrollbar:
#        scrollbar-width: none
#  - name: legacy
#    css: ./styles/legacy.css
#    variants:
#      hocus: "&:hover, &:focus"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
