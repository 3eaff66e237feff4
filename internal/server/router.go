package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/SarveshSonkusre02/researcher/internal/handlers"
)

type RouterConfig struct {
  AIHandler      *handlers.AIHandler
  NoteHandler    *handlers.NoteHandler
  AllowedOrigins []string
  ExportDir      string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.AllowedOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  // Exported files
  router.Static("/static", cfg.ExportDir)

  api := router.Group("/api")
  {
    api.POST("/ai/generate", cfg.AIHandler.Generate)
    api.POST("/notes", cfg.NoteHandler.CreateNote)
    api.PATCH("/notes/:id", cfg.NoteHandler.UpdateNote)
    api.GET("/notes", cfg.NoteHandler.ListNotes)
    api.POST("/notes/:id/export", cfg.NoteHandler.ExportNote)
  }

  return router
}
