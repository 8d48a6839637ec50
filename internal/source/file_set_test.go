package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualBuildsLineIndex(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("app.ts", []byte("const a = 1;\nconst b = 2;\n"))
	f := fs.Get(id)

	if len(f.LineIdx) != 2 {
		t.Fatalf("expected 2 newline offsets, got %d", len(f.LineIdx))
	}
	if f.LineIdx[0] != 12 || f.LineIdx[1] != 25 {
		t.Fatalf("unexpected line index: %v", f.LineIdx)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected FileVirtual flag")
	}
}

func TestLineColAt(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("app.ts", []byte("a\nbc\ndef"))
	f := fs.Get(id)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1}, // a
		{1, 1, 2}, // first newline belongs to line 1
		{2, 2, 1}, // b
		{3, 2, 2}, // c
		{5, 3, 1}, // d
		{7, 3, 3}, // f
	}
	for _, tc := range cases {
		got := f.LineColAt(tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("LineColAt(%d) = %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestLineColAtSingleLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("one.ts", []byte("let x = 1;")))

	got := f.LineColAt(4)
	if got.Line != 1 || got.Col != 5 {
		t.Fatalf("LineColAt(4) = %d:%d, want 1:5", got.Line, got.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("app.ts", []byte("first\nsecond\nthird")))

	if got := f.GetLine(1); got != "first" {
		t.Fatalf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Fatalf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("GetLine(4) = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("GetLine(0) = %q, want empty", got)
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.ts")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("const a = 1;\r\nconst b = 2;\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if f.Flags&FileHadBOM == 0 {
		t.Fatalf("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected FileNormalizedCRLF flag")
	}
	if string(f.Content) != "const a = 1;\nconst b = 2;\n" {
		t.Fatalf("unexpected normalized content: %q", f.Content)
	}
}

func TestGetByPathReturnsLatest(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dup.ts", []byte("old"))
	fs.AddVirtual("dup.ts", []byte("new"))

	f, ok := fs.GetByPath("dup.ts")
	if !ok {
		t.Fatalf("expected dup.ts to be present")
	}
	if string(f.Content) != "new" {
		t.Fatalf("expected latest content, got %q", f.Content)
	}
	if _, ok := fs.GetByPath("missing.ts"); ok {
		t.Fatalf("missing.ts should not resolve")
	}
}
