package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the candidate class names found in content",
	Long: `Scan the content globs and print every candidate token, one per line.
With --unresolved, print only candidates that produce no rule, which is
useful for spotting typos in class names.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("unresolved", false, "Print only candidates that produce no rule")
}

func runScan(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	config, err := buildConfig(logger)
	if err != nil {
		return err
	}

	scanned, err := utilcss.Scan(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	for _, w := range scanned.Warnings {
		logger.Warn("skipped unreadable source", "error", w)
	}
	logger.Debug("scan complete",
		"files", scanned.Stats.FilesScanned,
		"skipped", scanned.Stats.FilesSkipped,
		"candidates", len(scanned.Candidates))

	tokens := scanned.Candidates
	if unresolved, _ := cmd.Flags().GetBool("unresolved"); unresolved {
		config.Safelist = nil
		result, err := utilcss.Compile(cmd.Context(), config, tokens)
		if err != nil {
			return fmt.Errorf("resolve candidates: %w", err)
		}
		tokens = result.Unresolved
	}

	w := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}
	return nil
}
