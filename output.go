package utilcss

import (
	"errors"
	"fmt"
	"io"

	"github.com/yacobolo/utilcss/internal/report"
)

// OutputFormat selects how a build report is rendered.
type OutputFormat string

const (
	// OutputSummary prints a single success line (default)
	OutputSummary OutputFormat = "summary"
	// OutputFull adds statistics, layer/category breakdowns and warnings
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
	// OutputQuiet prints nothing; the exit code carries the result
	OutputQuiet OutputFormat = "quiet"
)

// ErrUnknownOutputFormat is returned for unrecognised format names.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// DetermineOutputFormat selects the output format from flags. quiet wins
// over an explicit format; an empty format means summary.
func DetermineOutputFormat(formatFlag string, quiet bool) (OutputFormat, error) {
	if quiet {
		return OutputQuiet, nil
	}
	switch OutputFormat(formatFlag) {
	case "", OutputSummary:
		return OutputSummary, nil
	case OutputFull, OutputJSON, OutputQuiet:
		return OutputFormat(formatFlag), nil
	default:
		return "", fmt.Errorf("%w %q (want summary, full, json or quiet)", ErrUnknownOutputFormat, formatFlag)
	}
}

// WriteOutput writes the build report in the given format.
func WriteOutput(w io.Writer, result *BuildResult, format OutputFormat, useColors bool) error {
	summary := toSummary(result)

	switch format {
	case OutputQuiet:
		return nil

	case OutputJSON:
		return WriteJSON(w, result)

	case OutputFull:
		reporter := report.NewReporter(w, useColors)
		reporter.PrintSummary(summary)

		verbose := report.NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(summary)
		verbose.PrintBreakdown(summary)
		verbose.PrintUnresolved(summary)
		verbose.PrintWarnings(summary)
		return nil

	default:
		report.NewReporter(w, useColors).PrintSummary(summary)
		return nil
	}
}

// toSummary converts a build result into the reporter's view of it.
func toSummary(result *BuildResult) report.Summary {
	s := report.Summary{
		FilesScanned: result.Stats.FilesScanned,
		FilesSkipped: result.Stats.FilesSkipped,
		FilesFailed:  result.Stats.FilesFailed,
		Candidates:   result.Candidates,
		Rules:        result.Rules,
		Unresolved:   result.Unresolved,
		Bytes:        len(result.CSS),
		Duration:     result.Duration,
	}
	for _, l := range result.Layers {
		s.Layers = append(s.Layers, report.Count{Name: l.Layer.String(), Rules: l.Rules})
	}
	for _, c := range result.Categories {
		s.Categories = append(s.Categories, report.Count{Name: string(c.Category), Rules: c.Rules})
	}
	for _, w := range result.Warnings {
		s.Warnings = append(s.Warnings, w.Error())
	}
	return s
}
