package diagfmt

import (
	"encoding/json"
	"io"

	"tsplain/internal/source"
)

// LocationJSON describes where a diagnostic points in JSON output.
type LocationJSON struct {
	File   string `json:"file"`
	Line   uint32 `json:"line,omitempty"`
	Column uint32 `json:"column,omitempty"`
}

// SuggestionJSON carries the synthesized advice in JSON output.
type SuggestionJSON struct {
	Suggestions []string `json:"suggestions"`
	Help        string   `json:"help,omitempty"`
}

// DiagnosticJSON is one explained diagnostic in JSON output.
type DiagnosticJSON struct {
	Code       string          `json:"code"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Location   LocationJSON    `json:"location"`
	Suggestion *SuggestionJSON `json:"suggestion,omitempty"`
}

// DiagnosticsOutput is the root structure of JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput assembles the JSON output structure without
// serializing it.
func BuildDiagnosticsOutput(entries []Entry, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	maxItems := len(entries)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for _, e := range entries[:maxItems] {
		loc := LocationJSON{
			File: displayPath(e.Diag.File, fs, opts.PathMode, opts.BaseDir),
		}
		if opts.IncludePositions {
			loc.Line = e.Diag.Line
			loc.Column = e.Diag.Column
		}
		d := DiagnosticJSON{
			Code:     e.Diag.CodeString(),
			Title:    e.Diag.Kind.Title(),
			Message:  e.Diag.Message,
			Location: loc,
		}
		if e.HasSuggestion {
			d.Suggestion = &SuggestionJSON{
				Suggestions: e.Suggestion.Suggestions,
				Help:        e.Suggestion.Help,
			}
		}
		diagnostics = append(diagnostics, d)
	}

	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(diagnostics)}
}

// JSON writes explained diagnostics as indented JSON.
func JSON(w io.Writer, entries []Entry, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(entries, fs, opts))
}
