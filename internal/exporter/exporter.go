package exporter

import (
  "fmt"
  "os"
  "path/filepath"
  "strings"

  "github.com/fumiama/go-docx"
  "github.com/go-pdf/fpdf"

  "github.com/SarveshSonkusre02/researcher/internal/types"
)

// BuildMarkdown synthesizes a research document from a note's structured
// sections. Used when the note carries no user-authored markdown.
func BuildMarkdown(company string, sections *types.NoteSections) string {
  if sections == nil {
    sections = &types.NoteSections{}
  }

  var b strings.Builder
  fmt.Fprintf(&b, "# Equity Research: %s\n", company)

  b.WriteString("\n## Research Questions\n")
  for i, q := range sections.Questions {
    fmt.Fprintf(&b, "%d. %s\n", i+1, q)
  }

  b.WriteString("\n## Business Model\n")
  if sections.BusinessModel != "" {
    b.WriteString(sections.BusinessModel + "\n")
  }

  b.WriteString("\n## Risks\n")
  for _, r := range sections.Risks {
    fmt.Fprintf(&b, "- %s\n", r)
  }

  b.WriteString("\n## Growth Drivers\n")
  for _, g := range sections.GrowthDrivers {
    fmt.Fprintf(&b, "- %s\n", g)
  }

  return b.String()
}

func WriteMarkdown(dir, baseName, markdown string) (string, error) {
  if err := os.MkdirAll(dir, 0o755); err != nil {
    return "", err
  }
  path := filepath.Join(dir, baseName+".md")
  if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
    return "", err
  }
  return path, nil
}

func WriteDOCX(dir, baseName, title, markdown string) (string, error) {
  if err := os.MkdirAll(dir, 0o755); err != nil {
    return "", err
  }
  path := filepath.Join(dir, baseName+".docx")

  w := docx.New().WithDefaultTheme()
  w.AddParagraph().AddText(title).Size("32")

  for _, line := range strings.Split(markdown, "\n") {
    text, level := classifyLine(line)
    if text == "" {
      continue
    }
    switch level {
    case 1:
      w.AddParagraph().AddText(text).Size("28")
    case 2:
      w.AddParagraph().AddText(text).Size("24")
    default:
      w.AddParagraph().AddText(text)
    }
  }

  f, err := os.Create(path)
  if err != nil {
    return "", err
  }
  defer f.Close()
  if _, err := w.WriteTo(f); err != nil {
    return "", err
  }
  return path, nil
}

func WritePDF(dir, baseName, title, markdown string) (string, error) {
  if err := os.MkdirAll(dir, 0o755); err != nil {
    return "", err
  }
  path := filepath.Join(dir, baseName+".pdf")

  pdf := fpdf.New("P", "mm", "A4", "")
  pdf.SetTitle(title, true)
  pdf.AddPage()
  pdf.SetFont("Helvetica", "B", 16)
  pdf.MultiCell(0, 8, title, "", "L", false)
  pdf.Ln(2)

  for _, line := range strings.Split(markdown, "\n") {
    text, level := classifyLine(line)
    if text == "" {
      pdf.Ln(2)
      continue
    }
    switch level {
    case 1:
      pdf.SetFont("Helvetica", "B", 14)
    case 2:
      pdf.SetFont("Helvetica", "B", 12)
    default:
      pdf.SetFont("Helvetica", "", 11)
    }
    pdf.MultiCell(0, 6, text, "", "L", false)
    if level > 0 {
      pdf.Ln(1)
    }
  }

  if err := pdf.OutputFileAndClose(path); err != nil {
    return "", err
  }
  return path, nil
}

// classifyLine strips markdown heading and bullet markers and reports the
// heading level (0 for body text). Only the line-level structure matters for
// the rendered documents.
func classifyLine(line string) (string, int) {
  trimmed := strings.TrimSpace(line)
  switch {
  case strings.HasPrefix(trimmed, "## "):
    return strings.TrimPrefix(trimmed, "## "), 2
  case strings.HasPrefix(trimmed, "# "):
    return strings.TrimPrefix(trimmed, "# "), 1
  case strings.HasPrefix(trimmed, "- "):
    return "• " + strings.TrimPrefix(trimmed, "- "), 0
  case strings.HasPrefix(trimmed, "* "):
    return "• " + strings.TrimPrefix(trimmed, "* "), 0
  default:
    return trimmed, 0
  }
}
