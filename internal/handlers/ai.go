package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/services"
)

type AIHandler struct {
  log             *logger.Logger
  researchService services.ResearchService
}

func NewAIHandler(log *logger.Logger, researchService services.ResearchService) *AIHandler {
  return &AIHandler{
    log:             log.With("handler", "AIHandler"),
    researchService: researchService,
  }
}

// POST /api/ai/generate
func (h *AIHandler) Generate(c *gin.Context) {
  var req struct {
    Company string `json:"company" binding:"required"`
    Ticker  string `json:"ticker"`
    Sector  string `json:"sector"`
    Country string `json:"country"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
    return
  }

  result, err := h.researchService.GenerateResearch(c.Request.Context(), services.GenerateInput{
    Company: req.Company,
    Ticker:  req.Ticker,
    Sector:  req.Sector,
    Country: req.Country,
  })
  if err != nil {
    h.log.Error("Generate failed", "company", req.Company, "error", err)
    var parseErr *services.GenerationParseError
    if errors.As(err, &parseErr) {
      RespondError(c, http.StatusInternalServerError, "generation_parse_failed", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "generation_failed", err)
    return
  }
  RespondOK(c, result)
}
