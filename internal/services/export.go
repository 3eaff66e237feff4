package services

import (
  "context"
  "path/filepath"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/SarveshSonkusre02/researcher/internal/exporter"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/repos"
  "github.com/SarveshSonkusre02/researcher/internal/types"
)

const (
  FormatMarkdown = "md"
  FormatDOCX     = "docx"
  FormatPDF      = "pdf"
)

type ExportService interface {
  ExportNote(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, format string) (*types.Export, error)
}

type exportService struct {
  db         *gorm.DB
  log        *logger.Logger
  noteRepo   repos.NoteRepo
  exportRepo repos.ExportRepo
  exportDir  string
}

func NewExportService(
  db *gorm.DB,
  baseLog *logger.Logger,
  noteRepo repos.NoteRepo,
  exportRepo repos.ExportRepo,
  exportDir string,
) ExportService {
  serviceLog := baseLog.With("service", "ExportService")
  return &exportService{
    db:         db,
    log:        serviceLog,
    noteRepo:   noteRepo,
    exportRepo: exportRepo,
    exportDir:  exportDir,
  }
}

// ExportNote renders the note into the requested format, writes the file under
// the export directory and records an Export row pointing at its public URL.
// Repeated calls write (and catalog) a fresh file each time.
func (s *exportService) ExportNote(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, format string) (*types.Export, error) {
  note, err := s.noteRepo.GetByID(ctx, tx, noteID)
  if err != nil {
    return nil, err
  }
  if note == nil {
    return nil, ErrNoteNotFound
  }

  switch format {
  case FormatMarkdown, FormatDOCX, FormatPDF:
  default:
    return nil, ErrUnsupportedFormat
  }

  markdown, err := s.resolveMarkdown(note)
  if err != nil {
    return nil, err
  }

  baseName := "note_" + note.ID.String()
  var path string
  switch format {
  case FormatMarkdown:
    path, err = exporter.WriteMarkdown(s.exportDir, baseName, markdown)
  case FormatDOCX:
    path, err = exporter.WriteDOCX(s.exportDir, baseName, note.Title, markdown)
  case FormatPDF:
    path, err = exporter.WritePDF(s.exportDir, baseName, note.Title, markdown)
  }
  if err != nil {
    s.log.Error("Export render failed", "note_id", noteID, "format", format, "error", err)
    return nil, err
  }

  export := &types.Export{
    ID:        uuid.New(),
    NoteID:    note.ID,
    FileURL:   "/static/" + filepath.Base(path),
    Format:    format,
    CreatedAt: time.Now(),
  }
  if _, err := s.exportRepo.Create(ctx, tx, export); err != nil {
    s.log.Error("Export row insert failed", "note_id", noteID, "error", err)
    return nil, err
  }
  return export, nil
}

// resolveMarkdown prefers the user-authored body verbatim; only a note with no
// content_md gets a document synthesized from its structured sections.
func (s *exportService) resolveMarkdown(note *types.ResearchNote) (string, error) {
  if note.ContentMD != "" {
    return note.ContentMD, nil
  }

  sections, err := note.GetSections()
  if err != nil {
    return "", err
  }
  companyName := "Unknown"
  if note.Company != nil {
    companyName = note.Company.Name
  }
  return exporter.BuildMarkdown(companyName, sections), nil
}
