// Package report renders build statistics for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Count is one row of a breakdown table.
type Count struct {
	Name  string
	Rules int
}

// Summary is the data a reporter prints. It is decoupled from the build
// result so the reporters carry no engine dependencies.
type Summary struct {
	FilesScanned int
	FilesSkipped int
	FilesFailed  int
	Candidates   int
	Rules        int
	Unresolved   []string
	Bytes        int
	Duration     time.Duration
	Layers       []Count
	Categories   []Count
	Warnings     []string
}

// Reporter prints the one-line build summary.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintSummary outputs the success line and a warning count.
func (r *Reporter) PrintSummary(s Summary) {
	line := fmt.Sprintf("✓ Generated %s (%s) from %s in %s",
		pluralizeCount(s.Rules, "rule", "rules"),
		humanize.Bytes(uint64(s.Bytes)),
		pluralizeCount(s.Candidates, "candidate", "candidates"),
		pluralizeCount(s.FilesScanned, "file", "files"))
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, line, r.useColors))

	if s.FilesSkipped > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray,
			fmt.Sprintf("  skipped %s (ignored)", pluralizeCount(s.FilesSkipped, "file", "files")), r.useColors))
	}
	if len(s.Warnings) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow,
			fmt.Sprintf("  %s", pluralizeCount(len(s.Warnings), "warning", "warnings")), r.useColors))
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see warnings", r.useColors))
	}
}

// PrintFailure outputs a build error.
func (r *Reporter) PrintFailure(err error) {
	fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleRed, "✗ Build failed:", r.useColors), err)
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	n := humanize.Comma(int64(count))
	if count == 1 {
		return n + " " + singular
	}
	return n + " " + plural
}
