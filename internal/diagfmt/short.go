package diagfmt

import (
	"fmt"
	"io"
	"sort"

	"tsplain/internal/source"
)

// Short writes one line per diagnostic in a stable, diff-friendly format:
// error <CODE> <path>:<line>:<col> <first suggestion, or the raw message>.
// Lines are sorted lexicographically, so the output does not depend on
// input order.
func Short(w io.Writer, entries []Entry, fs *source.FileSet) {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		text := e.Diag.Message
		if e.HasSuggestion && len(e.Suggestion.Suggestions) > 0 {
			text = e.Suggestion.Suggestions[0]
		}
		path := displayPath(e.Diag.File, fs, PathModeAuto, "")
		lines = append(lines, fmt.Sprintf("error %s %s:%d:%d %s",
			e.Diag.CodeString(), path, e.Diag.Line, e.Diag.Column, text))
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
