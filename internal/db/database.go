package db

import (
  "fmt"
  "strings"
  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/SarveshSonkusre02/researcher/internal/types"
  "github.com/SarveshSonkusre02/researcher/internal/utils"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
)

type DatabaseService struct {
  db  *gorm.DB
  log *logger.Logger
}

// NewDatabaseService opens the database named by DATABASE_URL. A postgres DSN
// gets the postgres driver; anything else (including the unset default) is
// treated as a sqlite file path.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
  serviceLog := log.With("service", "DatabaseService")

  databaseURL := utils.GetEnv("DATABASE_URL", "research.db", log)

  cfg := &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
    TranslateError: true,
  }

  var (
    database *gorm.DB
    err      error
  )
  if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
    log.Info("Connecting to Postgres...")
    database, err = gorm.Open(postgres.Open(databaseURL), cfg)
  } else {
    log.Info("Connecting to SQLite...", "path", databaseURL)
    database, err = gorm.Open(sqlite.Open(databaseURL), cfg)
  }
  if err != nil {
    log.Error("Failed to connect to database", "error", err)
    return nil, fmt.Errorf("Failed to connect to database: %w", err)
  }

  return &DatabaseService{db: database, log: serviceLog}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
  s.log.Info("Auto migrating tables...")
  err := s.db.AutoMigrate(
    &types.Company{},
    &types.ResearchNote{},
    &types.Export{},
    &types.ResearchTemplate{},
  )
  if err != nil {
    s.log.Error("Auto migration failed", "error", err)
    return err
  }
  return nil
}

func (s *DatabaseService) DB() *gorm.DB {
  return s.db
}
