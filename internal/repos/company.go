package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/types"
)

type CompanyRepo interface {
  Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error)
  // CreateIgnoreDuplicate inserts the company unless one with the same name
  // already exists. Reports whether the row was actually inserted.
  CreateIgnoreDuplicate(ctx context.Context, tx *gorm.DB, company *types.Company) (bool, error)
  GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Company, error)
}

type companyRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCompanyRepo(db *gorm.DB, baseLog *logger.Logger) CompanyRepo {
  repoLog := baseLog.With("repo", "CompanyRepo")
  return &companyRepo{db: db, log: repoLog}
}

func (r *companyRepo) Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(company).Error; err != nil {
    return nil, err
  }
  return company, nil
}

func (r *companyRepo) CreateIgnoreDuplicate(ctx context.Context, tx *gorm.DB, company *types.Company) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
    Create(company)
  if res.Error != nil {
    return false, res.Error
  }
  return res.RowsAffected > 0, nil
}

// GetByName does an exact, case-sensitive lookup. Returns (nil, nil) when the
// company does not exist.
func (r *companyRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Company, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var company types.Company
  err := transaction.WithContext(ctx).
    Where("name = ?", name).
    First(&company).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &company, nil
}
