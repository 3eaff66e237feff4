package services

import (
  "context"
  "errors"
  "os"
  "path/filepath"
  "strings"
  "testing"

  "github.com/google/uuid"

  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/repos"
  "github.com/SarveshSonkusre02/researcher/internal/types"
)

func newExportServiceForTest(t *testing.T) (ExportService, NoteService, string) {
  t.Helper()
  log, err := logger.New("test")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  database := newTestDB(t)
  companyRepo := repos.NewCompanyRepo(database, log)
  noteRepo := repos.NewNoteRepo(database, log)
  exportRepo := repos.NewExportRepo(database, log)
  exportDir := t.TempDir()
  exportSvc := NewExportService(database, log, noteRepo, exportRepo, exportDir)
  noteSvc := NewNoteService(database, log, companyRepo, noteRepo)
  return exportSvc, noteSvc, exportDir
}

func TestExportNoteUnknownIDFails(t *testing.T) {
  exportSvc, _, _ := newExportServiceForTest(t)

  _, err := exportSvc.ExportNote(context.Background(), nil, uuid.New(), FormatMarkdown)
  if !errors.Is(err, ErrNoteNotFound) {
    t.Fatalf("error: want=ErrNoteNotFound got=%v", err)
  }
}

func TestExportNoteRejectsUnknownFormat(t *testing.T) {
  exportSvc, noteSvc, exportDir := newExportServiceForTest(t)
  ctx := context.Background()

  note, err := noteSvc.CreateNote(ctx, nil, NoteCreateInput{Company: "Acme", Title: "t", MarkdownContent: "body"})
  if err != nil {
    t.Fatalf("CreateNote: %v", err)
  }

  _, err = exportSvc.ExportNote(ctx, nil, note.ID, "xls")
  if !errors.Is(err, ErrUnsupportedFormat) {
    t.Fatalf("error: want=ErrUnsupportedFormat got=%v", err)
  }

  entries, err := os.ReadDir(exportDir)
  if err != nil {
    t.Fatalf("read export dir: %v", err)
  }
  if len(entries) != 0 {
    t.Fatalf("files written: want=0 got=%d", len(entries))
  }
}

func TestExportNoteUsesContentMDVerbatim(t *testing.T) {
  exportSvc, noteSvc, exportDir := newExportServiceForTest(t)
  ctx := context.Background()

  note, err := noteSvc.CreateNote(ctx, nil, NoteCreateInput{
    Company:         "Acme",
    Title:           "t",
    MarkdownContent: "# my own notes\n",
    Sections:        &types.NoteSections{BusinessModel: "should not appear"},
  })
  if err != nil {
    t.Fatalf("CreateNote: %v", err)
  }

  export, err := exportSvc.ExportNote(ctx, nil, note.ID, FormatMarkdown)
  if err != nil {
    t.Fatalf("ExportNote: %v", err)
  }

  wantURL := "/static/note_" + note.ID.String() + ".md"
  if export.FileURL != wantURL {
    t.Fatalf("file_url: want=%q got=%q", wantURL, export.FileURL)
  }

  raw, err := os.ReadFile(filepath.Join(exportDir, "note_"+note.ID.String()+".md"))
  if err != nil {
    t.Fatalf("read exported file: %v", err)
  }
  if string(raw) != "# my own notes\n" {
    t.Fatalf("exported body: want verbatim content_md got=%q", raw)
  }
}

func TestExportNoteSynthesizesFromSections(t *testing.T) {
  exportSvc, noteSvc, exportDir := newExportServiceForTest(t)
  ctx := context.Background()

  note, err := noteSvc.CreateNote(ctx, nil, NoteCreateInput{
    Company: "Acme",
    Title:   "t",
    Sections: &types.NoteSections{
      Questions:     []string{"how big is the moat?"},
      BusinessModel: "subscription revenue",
      Risks:         []string{"customer concentration"},
      GrowthDrivers: []string{"international expansion"},
    },
  })
  if err != nil {
    t.Fatalf("CreateNote: %v", err)
  }

  if _, err := exportSvc.ExportNote(ctx, nil, note.ID, FormatMarkdown); err != nil {
    t.Fatalf("ExportNote: %v", err)
  }

  raw, err := os.ReadFile(filepath.Join(exportDir, "note_"+note.ID.String()+".md"))
  if err != nil {
    t.Fatalf("read exported file: %v", err)
  }
  body := string(raw)
  for _, want := range []string{
    "Acme",
    "how big is the moat?",
    "subscription revenue",
    "customer concentration",
    "international expansion",
  } {
    if !strings.Contains(body, want) {
      t.Fatalf("exported body missing %q:\n%s", want, body)
    }
  }
}

func TestExportNoteTwiceRecordsTwoRows(t *testing.T) {
  exportSvc, noteSvc, _ := newExportServiceForTest(t)
  ctx := context.Background()

  note, err := noteSvc.CreateNote(ctx, nil, NoteCreateInput{Company: "Acme", Title: "t", MarkdownContent: "body"})
  if err != nil {
    t.Fatalf("CreateNote: %v", err)
  }

  first, err := exportSvc.ExportNote(ctx, nil, note.ID, FormatMarkdown)
  if err != nil {
    t.Fatalf("first ExportNote: %v", err)
  }
  second, err := exportSvc.ExportNote(ctx, nil, note.ID, FormatMarkdown)
  if err != nil {
    t.Fatalf("second ExportNote: %v", err)
  }
  if first.ID == second.ID {
    t.Fatal("expected two distinct export rows")
  }
  if first.FileURL != second.FileURL {
    t.Fatalf("file_url should be deterministic: %q vs %q", first.FileURL, second.FileURL)
  }
}

func TestExportNoteWritesPDF(t *testing.T) {
  exportSvc, noteSvc, exportDir := newExportServiceForTest(t)
  ctx := context.Background()

  note, err := noteSvc.CreateNote(ctx, nil, NoteCreateInput{Company: "Acme", Title: "t", MarkdownContent: "# heading\n\nbody\n- item\n"})
  if err != nil {
    t.Fatalf("CreateNote: %v", err)
  }

  export, err := exportSvc.ExportNote(ctx, nil, note.ID, FormatPDF)
  if err != nil {
    t.Fatalf("ExportNote pdf: %v", err)
  }
  if export.Format != FormatPDF {
    t.Fatalf("format: want=pdf got=%q", export.Format)
  }

  info, err := os.Stat(filepath.Join(exportDir, "note_"+note.ID.String()+".pdf"))
  if err != nil {
    t.Fatalf("stat pdf: %v", err)
  }
  if info.Size() == 0 {
    t.Fatal("pdf file is empty")
  }
}
