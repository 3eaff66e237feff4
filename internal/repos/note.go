package repos

import (
  "context"
  "errors"
  "strings"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/types"
)

type NoteRepo interface {
  Create(ctx context.Context, tx *gorm.DB, note *types.ResearchNote) (*types.ResearchNote, error)
  GetByID(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) (*types.ResearchNote, error)
  Save(ctx context.Context, tx *gorm.DB, note *types.ResearchNote) (*types.ResearchNote, error)
  List(ctx context.Context, tx *gorm.DB, companyFilter string) ([]*types.ResearchNote, error)
}

type noteRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
  repoLog := baseLog.With("repo", "NoteRepo")
  return &noteRepo{db: db, log: repoLog}
}

func (r *noteRepo) Create(ctx context.Context, tx *gorm.DB, note *types.ResearchNote) (*types.ResearchNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(note).Error; err != nil {
    return nil, err
  }
  return note, nil
}

// GetByID returns (nil, nil) when no note has that id.
func (r *noteRepo) GetByID(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) (*types.ResearchNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var note types.ResearchNote
  err := transaction.WithContext(ctx).
    Preload("Company").
    Where("id = ?", noteID).
    First(&note).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &note, nil
}

func (r *noteRepo) Save(ctx context.Context, tx *gorm.DB, note *types.ResearchNote) (*types.ResearchNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Save(note).Error; err != nil {
    return nil, err
  }
  return note, nil
}

// List returns notes newest-first. A non-empty companyFilter narrows the
// result to notes whose company name contains the filter, case-insensitively.
// lower(...) LIKE is used instead of ILIKE so the query runs on both postgres
// and sqlite.
func (r *noteRepo) List(ctx context.Context, tx *gorm.DB, companyFilter string) ([]*types.ResearchNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  q := transaction.WithContext(ctx).
    Model(&types.ResearchNote{}).
    Preload("Company")
  if companyFilter != "" {
    q = q.
      Joins("JOIN companies ON companies.id = research_notes.company_id").
      Where("lower(companies.name) LIKE ?", "%"+strings.ToLower(companyFilter)+"%")
  }

  var notes []*types.ResearchNote
  if err := q.Order("research_notes.created_at DESC").Find(&notes).Error; err != nil {
    return nil, err
  }
  return notes, nil
}
