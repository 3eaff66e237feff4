package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/types"
)

type ExportRepo interface {
  Create(ctx context.Context, tx *gorm.DB, export *types.Export) (*types.Export, error)
  GetByNoteID(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) ([]*types.Export, error)
}

type exportRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewExportRepo(db *gorm.DB, baseLog *logger.Logger) ExportRepo {
  repoLog := baseLog.With("repo", "ExportRepo")
  return &exportRepo{db: db, log: repoLog}
}

func (r *exportRepo) Create(ctx context.Context, tx *gorm.DB, export *types.Export) (*types.Export, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(export).Error; err != nil {
    return nil, err
  }
  return export, nil
}

func (r *exportRepo) GetByNoteID(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) ([]*types.Export, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var exports []*types.Export
  if err := transaction.WithContext(ctx).
    Where("note_id = ?", noteID).
    Order("created_at DESC").
    Find(&exports).Error; err != nil {
    return nil, err
  }
  return exports, nil
}
