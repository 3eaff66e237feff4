package main

import (
  "context"
  "fmt"
  "os"
  "github.com/joho/godotenv"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/utils"
  "github.com/SarveshSonkusre02/researcher/internal/db"
  "github.com/SarveshSonkusre02/researcher/internal/repos"
  "github.com/SarveshSonkusre02/researcher/internal/services"
  "github.com/SarveshSonkusre02/researcher/internal/handlers"
  "github.com/SarveshSonkusre02/researcher/internal/server"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  allowedOrigins := utils.GetEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}, log)
  exportDir := utils.GetEnv("EXPORT_DIR", "exports", log)
  if err := os.MkdirAll(exportDir, 0o755); err != nil {
    log.Error("Could not create export directory", "dir", exportDir, "error", err)
    os.Exit(1)
  }

  // Database
  databaseService, err := db.NewDatabaseService(log)
  if err != nil {
    log.Error("Database init failed", "error", err)
    os.Exit(1)
  }
  if err = databaseService.AutoMigrateAll(); err != nil {
    log.Warn("Auto migration failed", "error", err)
  }
  theDB := databaseService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  companyRepo := repos.NewCompanyRepo(theDB, log)
  noteRepo := repos.NewNoteRepo(theDB, log)
  exportRepo := repos.NewExportRepo(theDB, log)

  // Services
  log.Info("Setting up Services from main...")
  geminiClient, err := services.NewGeminiClient(context.Background(), log)
  if err != nil {
    log.Error("Could not init GeminiClient", "error", err)
    os.Exit(1)
  }
  researchService := services.NewResearchService(log, geminiClient)
  noteService := services.NewNoteService(theDB, log, companyRepo, noteRepo)
  exportService := services.NewExportService(theDB, log, noteRepo, exportRepo, exportDir)

  // Handlers
  log.Info("Setting up handlers from main...")
  aiHandler := handlers.NewAIHandler(log, researchService)
  noteHandler := handlers.NewNoteHandler(log, noteService, exportService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AIHandler:      aiHandler,
    NoteHandler:    noteHandler,
    AllowedOrigins: allowedOrigins,
    ExportDir:      exportDir,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
