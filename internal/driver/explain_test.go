package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const addSource = `function add(a: number, b: number): number {
  return a + b;
}
add(1);
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestExplainEndToEnd(t *testing.T) {
	path := writeFixture(t, "add.ts", addSource)
	log := "starting compilation\n" +
		path + "(4,1): error TS2554: Expected 2 arguments, but got 1.\n" +
		"Found 1 error.\n"

	res, err := Explain(context.Background(), Options{Log: strings.NewReader(log)})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if res.Skipped != 2 {
		t.Fatalf("skipped = %d, want 2", res.Skipped)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(res.Entries))
	}
	e := res.Entries[0]
	if !e.HasSuggestion {
		t.Fatal("expected a suggestion")
	}
	want := "Check if all required arguments are provided when invoking `add`"
	if e.Suggestion.Suggestions[0] != want {
		t.Fatalf("suggestion = %q, want %q", e.Suggestion.Suggestions[0], want)
	}
	if len(res.FailedFiles) != 0 {
		t.Fatalf("failed files = %v", res.FailedFiles)
	}
}

func TestExplainEmptyInput(t *testing.T) {
	res, err := Explain(context.Background(), Options{Log: strings.NewReader("nothing to see\n")})
	if !errors.Is(err, ErrNoDiagnostics) {
		t.Fatalf("err = %v, want ErrNoDiagnostics", err)
	}
	if res == nil || res.Skipped != 1 {
		t.Fatalf("result = %+v, want skipped 1", res)
	}
}

func TestExplainMissingFileStillExplains(t *testing.T) {
	log := "gone.ts(1,1): error TS2554: Expected 2 arguments, but got 1.\n"
	res, err := Explain(context.Background(), Options{Log: strings.NewReader(log)})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if len(res.FailedFiles) != 1 || res.FailedFiles[0] != "gone.ts" {
		t.Fatalf("failed files = %v", res.FailedFiles)
	}
	e := res.Entries[0]
	if !e.HasSuggestion {
		t.Fatal("expected a message-only suggestion")
	}
	want := "Check if all required arguments are provided when invoking `function`"
	if e.Suggestion.Suggestions[0] != want {
		t.Fatalf("suggestion = %q, want %q", e.Suggestion.Suggestions[0], want)
	}
}

func TestExplainUnknownCode(t *testing.T) {
	path := writeFixture(t, "add.ts", addSource)
	log := path + "(1,1): error TS9999: mystery condition.\n"
	res, err := Explain(context.Background(), Options{Log: strings.NewReader(log)})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	e := res.Entries[0]
	if e.HasSuggestion {
		t.Fatal("unsupported code must not get a suggestion")
	}
	if e.Diag.CodeString() != "TS9999" {
		t.Fatalf("code = %q, want TS9999", e.Diag.CodeString())
	}
}

func TestExplainMaxErrors(t *testing.T) {
	path := writeFixture(t, "add.ts", addSource)
	line := path + "(4,1): error TS2554: Expected 2 arguments, but got 1.\n"
	log := strings.Repeat(line, 5)
	res, err := Explain(context.Background(), Options{Log: strings.NewReader(log), MaxErrors: 2})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(res.Entries))
	}
}

func TestExplainDeterministicOrder(t *testing.T) {
	path := writeFixture(t, "add.ts", addSource)
	log := path + "(4,1): error TS2554: Expected 2 arguments, but got 1.\n" +
		path + "(1,14): error TS2304: Cannot find name 'missing'.\n" +
		path + "(2,10): error TS2322: Type 'string' is not assignable to type 'number'.\n"
	res, err := Explain(context.Background(), Options{Log: strings.NewReader(log), Jobs: 4})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if len(res.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(res.Entries))
	}
	wantLines := []uint32{4, 1, 2}
	for i, e := range res.Entries {
		if e.Diag.Line != wantLines[i] {
			t.Fatalf("entry %d line = %d, want %d", i, e.Diag.Line, wantLines[i])
		}
	}
}

func TestExplainEmitsEvents(t *testing.T) {
	path := writeFixture(t, "add.ts", addSource)
	log := path + "(4,1): error TS2554: Expected 2 arguments, but got 1.\n"

	ch := make(chan Event, 64)
	_, err := Explain(context.Background(), Options{
		Log:      strings.NewReader(log),
		Progress: ChannelSink{Ch: ch},
	})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	close(ch)

	var sawQueued, sawTokenized, sawExplained bool
	for ev := range ch {
		if ev.File != path {
			t.Fatalf("event for unexpected file %q", ev.File)
		}
		switch {
		case ev.Stage == StageTokenize && ev.Status == StatusQueued:
			sawQueued = true
		case ev.Stage == StageTokenize && ev.Status == StatusDone:
			sawTokenized = true
		case ev.Stage == StageExplain && ev.Status == StatusDone:
			sawExplained = true
		}
	}
	if !sawQueued || !sawTokenized || !sawExplained {
		t.Fatalf("missing events: queued=%v tokenized=%v explained=%v",
			sawQueued, sawTokenized, sawExplained)
	}
}
