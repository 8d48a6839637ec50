package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"tsplain/internal/token"
)

// TokenOutput is one scanned token in JSON form.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// FormatTokensPretty dumps tokens in a human-readable format.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Raw != "" {
			fmt.Fprintf(w, " %q", tok.Raw)
		}
		fmt.Fprintf(w, " at %d:%d", tok.Line, tok.Column)
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON dumps tokens in JSON format.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Raw,
			Line:   tok.Line,
			Column: tok.Column,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
