package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tsplain/internal/source"
)

var (
	locStyle   = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	codeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emphasized = color.New(color.FgRed, color.Bold)
)

// Pretty formats explained diagnostics in a human-readable way.
// For each entry it prints:
// <path>:<line>:<col>: error <CODE>: <Message>
// then the suggestion lines indented by two spaces, then an optional
// "help:" line. Color is enabled by option.
func Pretty(w io.Writer, entries []Entry, fs *source.FileSet, opts PrettyOpts) {
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		path := displayPath(e.Diag.File, fs, opts.PathMode, opts.BaseDir)
		loc := fmt.Sprintf("%s:%d:%d:", path, e.Diag.Line, e.Diag.Column)
		errWord, code := "error", e.Diag.CodeString()
		if opts.Color {
			loc = locStyle.Render(loc)
			errWord = errStyle.Render(errWord)
			code = codeStyle.Render(code)
		}
		fmt.Fprintf(w, "%s %s %s: %s\n", loc, errWord, code, e.Diag.Message)

		if !e.HasSuggestion {
			continue
		}
		for _, line := range e.Suggestion.Suggestions {
			writeWrapped(w, "  ", emphasize(line, opts.Color), int(opts.Width))
		}
		if opts.ShowHelp && e.Suggestion.Help != "" {
			label := "help:"
			if opts.Color {
				label = helpStyle.Render(label)
			}
			writeWrapped(w, "  ", label+" "+emphasize(e.Suggestion.Help, opts.Color), int(opts.Width))
		}
	}
}

// emphasize styles backtick-delimited spans. Without color the backticks
// stay in place; with color they are replaced by the styled text.
func emphasize(line string, colored bool) string {
	if !colored || !strings.Contains(line, "`") {
		return line
	}
	parts := strings.Split(line, "`")
	if len(parts)%2 == 0 {
		// Unbalanced backticks, leave the line alone.
		return line
	}
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(emphasized.Sprint(part))
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}

// writeWrapped prints text prefixed by indent, word-wrapping at width
// display cells. Width 0 disables wrapping. Styled text is never wrapped:
// ANSI sequences would confuse the cell measurement.
func writeWrapped(w io.Writer, indent, text string, width int) {
	limit := width - len(indent)
	if width == 0 || limit <= 0 || strings.Contains(text, "\x1b") ||
		runewidth.StringWidth(text) <= limit {
		fmt.Fprintf(w, "%s%s\n", indent, text)
		return
	}
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= limit:
			line += " " + word
		default:
			fmt.Fprintf(w, "%s%s\n", indent, line)
			line = word
		}
	}
	if line != "" {
		fmt.Fprintf(w, "%s%s\n", indent, line)
	}
}
