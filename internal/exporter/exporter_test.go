package exporter

import (
  "os"
  "strings"
  "testing"

  "github.com/SarveshSonkusre02/researcher/internal/types"
)

func TestBuildMarkdownIncludesAllSections(t *testing.T) {
  md := BuildMarkdown("Acme", &types.NoteSections{
    Questions:     []string{"q1", "q2"},
    BusinessModel: "sells widgets",
    Risks:         []string{"r1"},
    GrowthDrivers: []string{"g1"},
  })

  for _, want := range []string{
    "# Equity Research: Acme",
    "## Research Questions",
    "1. q1",
    "2. q2",
    "## Business Model",
    "sells widgets",
    "## Risks",
    "- r1",
    "## Growth Drivers",
    "- g1",
  } {
    if !strings.Contains(md, want) {
      t.Fatalf("markdown missing %q:\n%s", want, md)
    }
  }
}

func TestBuildMarkdownTolerantOfNilSections(t *testing.T) {
  md := BuildMarkdown("Acme", nil)
  if !strings.Contains(md, "# Equity Research: Acme") {
    t.Fatalf("markdown missing title:\n%s", md)
  }
  if !strings.Contains(md, "## Risks") {
    t.Fatalf("markdown missing empty risks heading:\n%s", md)
  }
}

func TestClassifyLine(t *testing.T) {
  cases := []struct {
    line      string
    wantText  string
    wantLevel int
  }{
    {"# Title", "Title", 1},
    {"## Section", "Section", 2},
    {"- bullet", "\u2022 bullet", 0},
    {"* bullet", "\u2022 bullet", 0},
    {"plain text", "plain text", 0},
    {"   ", "", 0},
  }
  for _, tc := range cases {
    text, level := classifyLine(tc.line)
    if text != tc.wantText || level != tc.wantLevel {
      t.Fatalf("classifyLine(%q): want=(%q,%d) got=(%q,%d)", tc.line, tc.wantText, tc.wantLevel, text, level)
    }
  }
}

func TestWriteMarkdownCreatesDirectoryAndFile(t *testing.T) {
  dir := t.TempDir() + "/nested"
  path, err := WriteMarkdown(dir, "note_x", "# body\n")
  if err != nil {
    t.Fatalf("WriteMarkdown: %v", err)
  }
  raw, err := os.ReadFile(path)
  if err != nil {
    t.Fatalf("read back: %v", err)
  }
  if string(raw) != "# body\n" {
    t.Fatalf("content: want=%q got=%q", "# body\n", raw)
  }
}
