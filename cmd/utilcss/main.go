// Package main provides the utilcss CLI tool for generating utility-class stylesheets.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		useColors := report.ShouldUseColors(os.Stderr, false)
		report.NewReporter(os.Stderr, useColors).PrintFailure(err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for configuration problems and 1 for everything else.
func exitCode(err error) int {
	var cfgErr *utilcss.ConfigurationError
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}
