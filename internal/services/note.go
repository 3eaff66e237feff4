package services

import (
  "context"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/repos"
  "github.com/SarveshSonkusre02/researcher/internal/types"
)

type NoteCreateInput struct {
  Company         string
  Ticker          string
  Title           string
  MarkdownContent string
  Sections        *types.NoteSections
  CreatedBy       string
}

// NoteUpdateInput uses pointer fields so an explicit empty value can be told
// apart from an omitted one. Nil fields are left unchanged.
type NoteUpdateInput struct {
  Title           *string
  MarkdownContent *string
  Sections        *types.NoteSections
}

type NoteService interface {
  CreateNote(ctx context.Context, tx *gorm.DB, input NoteCreateInput) (*types.ResearchNote, error)
  UpdateNote(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, input NoteUpdateInput) (*types.ResearchNote, error)
  ListNotes(ctx context.Context, tx *gorm.DB, companyFilter string) ([]*types.ResearchNote, error)
}

type noteService struct {
  db          *gorm.DB
  log         *logger.Logger
  companyRepo repos.CompanyRepo
  noteRepo    repos.NoteRepo
}

func NewNoteService(
  db *gorm.DB,
  baseLog *logger.Logger,
  companyRepo repos.CompanyRepo,
  noteRepo repos.NoteRepo,
) NoteService {
  serviceLog := baseLog.With("service", "NoteService")
  return &noteService{
    db:          db,
    log:         serviceLog,
    companyRepo: companyRepo,
    noteRepo:    noteRepo,
  }
}

func (s *noteService) CreateNote(ctx context.Context, tx *gorm.DB, input NoteCreateInput) (*types.ResearchNote, error) {
  if tx != nil {
    return s.createNote(ctx, tx, input)
  }
  // Company find-or-create and note insert share one transaction so a failed
  // note insert never leaves a stray company behind.
  var note *types.ResearchNote
  err := s.db.Transaction(func(transaction *gorm.DB) error {
    created, err := s.createNote(ctx, transaction, input)
    if err != nil {
      return err
    }
    note = created
    return nil
  })
  if err != nil {
    return nil, err
  }
  return note, nil
}

func (s *noteService) createNote(ctx context.Context, tx *gorm.DB, input NoteCreateInput) (*types.ResearchNote, error) {
  company, err := s.findOrCreateCompany(ctx, tx, input.Company, input.Ticker)
  if err != nil {
    s.log.Error("Company find-or-create failed", "company", input.Company, "error", err)
    return nil, err
  }

  now := time.Now()
  note := &types.ResearchNote{
    ID:        uuid.New(),
    CompanyID: &company.ID,
    Title:     input.Title,
    ContentMD: input.MarkdownContent,
    CreatedBy: resolveCreatedBy(input.CreatedBy),
    CreatedAt: now,
    UpdatedAt: now,
  }
  if err := note.SetSections(input.Sections); err != nil {
    return nil, err
  }

  if _, err := s.noteRepo.Create(ctx, tx, note); err != nil {
    s.log.Error("Note insert failed", "company", input.Company, "error", err)
    return nil, err
  }
  note.Company = company
  return note, nil
}

// findOrCreateCompany resolves a company by exact name, creating it when
// unseen. The insert ignores a name conflict and re-reads, so two concurrent
// first-creates for the same name both land on the single surviving row. The
// ticker is applied only when this call creates the row (first write wins).
func (s *noteService) findOrCreateCompany(ctx context.Context, tx *gorm.DB, name, ticker string) (*types.Company, error) {
  company, err := s.companyRepo.GetByName(ctx, tx, name)
  if err != nil {
    return nil, err
  }
  if company != nil {
    return company, nil
  }

  candidate := &types.Company{
    ID:        uuid.New(),
    Name:      name,
    Ticker:    ticker,
    CreatedAt: time.Now(),
  }
  created, err := s.companyRepo.CreateIgnoreDuplicate(ctx, tx, candidate)
  if err != nil {
    return nil, err
  }
  if created {
    return candidate, nil
  }
  return s.companyRepo.GetByName(ctx, tx, name)
}

func (s *noteService) UpdateNote(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, input NoteUpdateInput) (*types.ResearchNote, error) {
  note, err := s.noteRepo.GetByID(ctx, tx, noteID)
  if err != nil {
    return nil, err
  }
  if note == nil {
    return nil, ErrNoteNotFound
  }

  if input.Title != nil {
    note.Title = *input.Title
  }
  if input.MarkdownContent != nil {
    note.ContentMD = *input.MarkdownContent
  }
  if input.Sections != nil {
    if err := note.SetSections(input.Sections); err != nil {
      return nil, err
    }
  }
  note.UpdatedAt = time.Now()

  // Detach the preloaded company so Save does not touch the association.
  company := note.Company
  note.Company = nil
  if _, err := s.noteRepo.Save(ctx, tx, note); err != nil {
    s.log.Error("Note update failed", "note_id", noteID, "error", err)
    return nil, err
  }
  note.Company = company
  return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, tx *gorm.DB, companyFilter string) ([]*types.ResearchNote, error) {
  notes, err := s.noteRepo.List(ctx, tx, companyFilter)
  if err != nil {
    s.log.Error("Note list failed", "filter", companyFilter, "error", err)
    return nil, err
  }
  return notes, nil
}

func resolveCreatedBy(createdBy string) string {
  if strings.TrimSpace(createdBy) == "" {
    return "anonymous"
  }
  return createdBy
}
