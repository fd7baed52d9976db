package utilcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string      `json:"version"`
	Timestamp  string      `json:"timestamp"`
	Summary    JSONSummary `json:"summary"`
	Layers     []JSONCount `json:"layers"`
	Categories []JSONCount `json:"categories"`
	Unresolved []string    `json:"unresolved"`
	Warnings   []JSONIssue `json:"warnings"`
}

// JSONSummary contains high-level build counts
type JSONSummary struct {
	FilesScanned int   `json:"files_scanned"`
	FilesSkipped int   `json:"files_skipped"`
	FilesFailed  int   `json:"files_failed"`
	Candidates   int   `json:"candidates"`
	Rules        int   `json:"rules"`
	Unresolved   int   `json:"unresolved"`
	Bytes        int   `json:"bytes"`
	DurationMS   int64 `json:"duration_ms"`
}

// JSONCount is one row of a breakdown
type JSONCount struct {
	Name  string `json:"name"`
	Rules int    `json:"rules"`
}

// JSONIssue represents a single non-fatal problem
type JSONIssue struct {
	File    string `json:"file,omitempty"`
	Message string `json:"message"`
}

// WriteJSON writes the build result as JSON
func WriteJSON(w io.Writer, result *BuildResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts BuildResult to JSONOutput. Slices are never nil
// so consumers always see arrays.
func buildJSONOutput(result *BuildResult) JSONOutput {
	layers := make([]JSONCount, len(result.Layers))
	for i, l := range result.Layers {
		layers[i] = JSONCount{Name: l.Layer.String(), Rules: l.Rules}
	}

	categories := make([]JSONCount, len(result.Categories))
	for i, c := range result.Categories {
		categories[i] = JSONCount{Name: string(c.Category), Rules: c.Rules}
	}

	warnings := make([]JSONIssue, len(result.Warnings))
	for i, err := range result.Warnings {
		issue := JSONIssue{Message: err.Error()}
		if u, ok := err.(*UnreadableSourceError); ok {
			issue.File = u.Path
			issue.Message = u.Err.Error()
		}
		warnings[i] = issue
	}

	unresolved := result.Unresolved
	if unresolved == nil {
		unresolved = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned: result.Stats.FilesScanned,
			FilesSkipped: result.Stats.FilesSkipped,
			FilesFailed:  result.Stats.FilesFailed,
			Candidates:   result.Candidates,
			Rules:        result.Rules,
			Unresolved:   len(result.Unresolved),
			Bytes:        len(result.CSS),
			DurationMS:   result.Duration.Milliseconds(),
		},
		Layers:     layers,
		Categories: categories,
		Unresolved: unresolved,
		Warnings:   warnings,
	}
}
