package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/services"
  "github.com/SarveshSonkusre02/researcher/internal/types"
)

type NoteHandler struct {
  log           *logger.Logger
  noteService   services.NoteService
  exportService services.ExportService
}

func NewNoteHandler(log *logger.Logger, noteService services.NoteService, exportService services.ExportService) *NoteHandler {
  return &NoteHandler{
    log:           log.With("handler", "NoteHandler"),
    noteService:   noteService,
    exportService: exportService,
  }
}

// POST /api/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
  var req struct {
    Company         string              `json:"company" binding:"required"`
    Ticker          string              `json:"ticker"`
    Title           string              `json:"title" binding:"required"`
    MarkdownContent string              `json:"markdown_content"`
    Sections        *types.NoteSections `json:"sections"`
    CreatedBy       string              `json:"created_by"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
    return
  }

  note, err := h.noteService.CreateNote(c.Request.Context(), nil, services.NoteCreateInput{
    Company:         req.Company,
    Ticker:          req.Ticker,
    Title:           req.Title,
    MarkdownContent: req.MarkdownContent,
    Sections:        req.Sections,
    CreatedBy:       req.CreatedBy,
  })
  if err != nil {
    h.log.Error("CreateNote failed", "company", req.Company, "error", err)
    RespondError(c, http.StatusInternalServerError, "create_note_failed", err)
    return
  }
  RespondOK(c, note)
}

// PATCH /api/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
  noteID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_note_id", err)
    return
  }

  var req struct {
    Title           *string             `json:"title"`
    MarkdownContent *string             `json:"markdown_content"`
    Sections        *types.NoteSections `json:"sections"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
    return
  }

  note, err := h.noteService.UpdateNote(c.Request.Context(), nil, noteID, services.NoteUpdateInput{
    Title:           req.Title,
    MarkdownContent: req.MarkdownContent,
    Sections:        req.Sections,
  })
  if err != nil {
    if errors.Is(err, services.ErrNoteNotFound) {
      RespondError(c, http.StatusNotFound, "note_not_found", err)
      return
    }
    h.log.Error("UpdateNote failed", "note_id", noteID, "error", err)
    RespondError(c, http.StatusInternalServerError, "update_note_failed", err)
    return
  }
  RespondOK(c, note)
}

// GET /api/notes?company=
func (h *NoteHandler) ListNotes(c *gin.Context) {
  notes, err := h.noteService.ListNotes(c.Request.Context(), nil, c.Query("company"))
  if err != nil {
    h.log.Error("ListNotes failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "list_notes_failed", err)
    return
  }
  RespondOK(c, notes)
}

// POST /api/notes/:id/export
func (h *NoteHandler) ExportNote(c *gin.Context) {
  noteID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_note_id", err)
    return
  }

  var req struct {
    Format string `json:"format" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
    return
  }

  export, err := h.exportService.ExportNote(c.Request.Context(), nil, noteID, req.Format)
  if err != nil {
    if errors.Is(err, services.ErrNoteNotFound) {
      RespondError(c, http.StatusNotFound, "note_not_found", err)
      return
    }
    if errors.Is(err, services.ErrUnsupportedFormat) {
      RespondError(c, http.StatusBadRequest, "unsupported_format", err)
      return
    }
    h.log.Error("ExportNote failed", "note_id", noteID, "format", req.Format, "error", err)
    RespondError(c, http.StatusInternalServerError, "export_note_failed", err)
    return
  }
  RespondOK(c, export)
}
