package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTsplainTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, "tsplain.toml")
	if err := os.WriteFile(manifest, []byte("[output]\nformat = \"short\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, ok, err := findTsplainToml(nested)
	if err != nil || !ok {
		t.Fatalf("findTsplainToml: ok=%v err=%v", ok, err)
	}
	if found != manifest {
		t.Fatalf("found %q, want %q", found, manifest)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsplain.toml")
	content := `[output]
color = "off"
format = "json"

[explain]
jobs = 4
token_cache = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Output.Color != "off" || cfg.Output.Format != "json" {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if cfg.Explain.Jobs != 4 || !cfg.Explain.TokenCache {
		t.Fatalf("explain = %+v", cfg.Explain)
	}
}

func TestLoadProjectConfigBadToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsplain.toml")
	if err := os.WriteFile(path, []byte("[output\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadProjectConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindTsplainTomlAbsent(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := findTsplainToml(dir)
	if err != nil {
		t.Fatalf("findTsplainToml: %v", err)
	}
	if ok {
		t.Fatal("unexpected manifest found above temp dir")
	}
}
