package diagfmt

import (
	"tsplain/internal/source"
	"tsplain/internal/suggest"
	"tsplain/internal/tserr"
)

// Entry pairs a parsed diagnostic with its synthesized suggestion.
// HasSuggestion is false for kinds the suggestion layer does not cover.
type Entry struct {
	Diag          tserr.Diagnostic
	Suggestion    suggest.Suggestion
	HasSuggestion bool
}

// displayPath renders the diagnostic's file path for output. The FileSet is
// optional: entries whose file never loaded fall back to the raw path from
// the log line.
func displayPath(path string, fs *source.FileSet, mode PathMode, baseDir string) string {
	if fs == nil {
		return path
	}
	f, ok := fs.GetByPath(path)
	if !ok {
		return path
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", baseDir)
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
