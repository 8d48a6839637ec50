package diagfmt

import (
	"strings"
	"testing"

	"tsplain/internal/suggest"
	"tsplain/internal/tserr"
)

func TestShortSortedAndStable(t *testing.T) {
	entries := []Entry{
		{
			Diag: tserr.Diagnostic{File: "z.ts", Line: 1, Column: 1,
				Kind: tserr.KindMissingModule, RawCode: "TS2307",
				Message: "Cannot find module 'x'."},
			Suggestion:    suggest.Suggestion{Suggestions: []string{"Module `x` does not exist."}},
			HasSuggestion: true,
		},
		{
			Diag: tserr.Diagnostic{File: "a.ts", Line: 2, Column: 4,
				Kind: tserr.KindUnsupported, RawCode: "TS9999", Message: "mystery"},
		},
	}

	var fwd, rev strings.Builder
	Short(&fwd, entries, nil)
	Short(&rev, []Entry{entries[1], entries[0]}, nil)
	if fwd.String() != rev.String() {
		t.Fatalf("output depends on input order:\n%s\nvs\n%s", fwd.String(), rev.String())
	}

	want := "error TS2307 z.ts:1:1 Module `x` does not exist.\n" +
		"error TS9999 a.ts:2:4 mystery\n"
	if fwd.String() != want {
		t.Fatalf("Short output:\n%q\nwant:\n%q", fwd.String(), want)
	}
}
