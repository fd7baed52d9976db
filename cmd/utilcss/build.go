package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/report"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"gen"},
	Short:   "Generate the stylesheet from scanned content",
	Long: `Scan the content globs for candidate class names and write a stylesheet
with one rule per recognised utility. The stylesheet goes to stdout
unless --output is set, in which case the report goes to stdout instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringP("output", "o", "", "Stylesheet path (default: stdout)")
	f.String("dark-mode", "media", "Dark mode: media|class|<marker class>")
	f.Bool("minify", false, "Write one line per block")
	f.String("banner", "", "Comment written at the top of the stylesheet")
	f.StringSlice("safelist", nil, "Classes to generate even when not found in content")
	f.StringSlice("preset", nil, "Theme preset files (.yaml, .json, .toml)")
	f.Int("concurrency", 0, "Worker count for scanning and generation (default: GOMAXPROCS)")
	f.String("output-format", "summary", "Report format: summary|full|json|quiet")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	config, err := buildConfig(logger)
	if err != nil {
		return err
	}

	format, err := utilcss.DetermineOutputFormat(
		getStringWithDefault("output-format", string(utilcss.OutputSummary)),
		getBoolWithDefault("quiet", false),
	)
	if err != nil {
		return err
	}

	result, err := utilcss.Build(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	reportTo := cmd.OutOrStdout()
	if output := k.String("output"); output == "" || output == "-" {
		if _, err := io.WriteString(cmd.OutOrStdout(), result.CSS); err != nil {
			return fmt.Errorf("writing stylesheet: %w", err)
		}
		reportTo = cmd.ErrOrStderr()
	} else {
		written, err := writeStylesheet(output, result.CSS)
		if err != nil {
			return err
		}
		logger.Debug("stylesheet output", "path", output, "written", written)
	}

	useColors := report.ShouldUseColors(reportTo, getBoolWithDefault("color", false))
	return utilcss.WriteOutput(reportTo, result, format, useColors)
}

// writeStylesheet writes css to path, creating parent directories. An
// unchanged file is left alone so file watchers do not fire.
func writeStylesheet(path, css string) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, []byte(css)) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return false, fmt.Errorf("writing stylesheet: %w", err)
	}
	return true, nil
}
