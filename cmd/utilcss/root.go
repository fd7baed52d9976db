package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "utilcss",
	Short: "Utility-class stylesheet generator",
	Long: `Scan source files for utility class names and generate a stylesheet
containing exactly the rules they use.
Classes such as p-4, md:hover:bg-red-500/50 and w-[40%] are resolved
against the theme, the variants and any configured plugins.`,
	// Default behavior: run build when no subcommand is given.
	// We must call loadConfig here because PreRunE of buildCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress the report (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (default: warn)")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().StringSlice("content", nil, "Glob patterns for files to scan")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
