package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// maxUnresolvedShown caps the unresolved sample in verbose output.
const maxUnresolvedShown = 10

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs scan and generation statistics
func (r *VerboseReporter) PrintStatistics(s Summary) {
	r.header(StyleCyan, "Build Statistics")

	fmt.Fprintf(r.w, "Files Scanned:  %s\n", humanize.Comma(int64(s.FilesScanned)))
	fmt.Fprintf(r.w, "Files Skipped:  %s\n", humanize.Comma(int64(s.FilesSkipped)))
	fmt.Fprintf(r.w, "Files Failed:   %s\n", humanize.Comma(int64(s.FilesFailed)))
	fmt.Fprintf(r.w, "Candidates:     %s\n", humanize.Comma(int64(s.Candidates)))
	fmt.Fprintf(r.w, "Rules:          %s (%.1f%% of candidates)\n",
		humanize.Comma(int64(s.Rules)), percentage(s.Rules, s.Candidates))
	fmt.Fprintf(r.w, "Unresolved:     %s\n", humanize.Comma(int64(len(s.Unresolved))))
	fmt.Fprintf(r.w, "Output Size:    %s\n", humanize.Bytes(uint64(s.Bytes)))
	fmt.Fprintf(r.w, "Duration:       %s\n", s.Duration.Round(time.Millisecond))
}

// PrintBreakdown shows rules per layer and per property category
func (r *VerboseReporter) PrintBreakdown(s Summary) {
	if len(s.Layers) > 0 {
		r.header(StyleCyan, "Rules by Layer")
		r.printCounts(s.Layers, s.Rules)
	}
	if len(s.Categories) > 0 {
		r.header(StyleCyan, "Rules by Category")
		r.printCounts(s.Categories, s.Rules)
	}
}

// PrintUnresolved lists a sample of candidates that produced no rule
func (r *VerboseReporter) PrintUnresolved(s Summary) {
	if len(s.Unresolved) == 0 {
		return
	}

	r.header(StyleGray, "Unresolved Candidates")
	for i, tok := range s.Unresolved {
		if i >= maxUnresolvedShown {
			fmt.Fprintf(r.w, "... and %s more\n", humanize.Comma(int64(len(s.Unresolved)-i)))
			break
		}
		fmt.Fprintf(r.w, "%d. %s\n", i+1, tok)
	}
}

// PrintWarnings shows unreadable sources
func (r *VerboseReporter) PrintWarnings(s Summary) {
	if len(s.Warnings) == 0 {
		return
	}

	r.header(StyleYellow, "Warnings")
	for _, warning := range s.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func (r *VerboseReporter) header(style lipgloss.Style, title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(style, title, r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len(title)+2))
}

func (r *VerboseReporter) printCounts(counts []Count, total int) {
	width := 0
	for _, c := range counts {
		width = max(width, len(c.Name))
	}
	for _, c := range counts {
		fmt.Fprintf(r.w, "%-*s  %6s  %5.1f%%\n", width, c.Name, humanize.Comma(int64(c.Rules)), percentage(c.Rules, total))
	}
}

func percentage(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
