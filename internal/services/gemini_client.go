package services

import (
  "context"
  "fmt"
  "os"
  "strings"
  "time"

  "google.golang.org/genai"

  "github.com/SarveshSonkusre02/researcher/internal/logger"
  "github.com/SarveshSonkusre02/researcher/internal/utils"
)

// TextGenerator is the outbound text-completion dependency. The research
// service only needs a prompt-in, text-out call.
type TextGenerator interface {
  GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
  log     *logger.Logger
  client  *genai.Client
  model   string
  timeout time.Duration
}

func NewGeminiClient(ctx context.Context, log *logger.Logger) (TextGenerator, error) {
  apiKey := os.Getenv("GEMINI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing GEMINI_API_KEY")
  }

  model := utils.GetEnv("GEMINI_MODEL", "gemini-1.5-flash", log)
  timeoutSec := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 60, log)

  client, err := genai.NewClient(ctx, &genai.ClientConfig{
    APIKey:  apiKey,
    Backend: genai.BackendGeminiAPI,
  })
  if err != nil {
    return nil, fmt.Errorf("create gemini client: %w", err)
  }

  return &geminiClient{
    log:     log.With("service", "GeminiClient"),
    client:  client,
    model:   model,
    timeout: time.Duration(timeoutSec) * time.Second,
  }, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
  ctx, cancel := context.WithTimeout(ctx, c.timeout)
  defer cancel()

  result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
  if err != nil {
    return "", fmt.Errorf("gemini api call failed: %w", err)
  }
  if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
    return "", fmt.Errorf("gemini returned an empty response")
  }

  var text strings.Builder
  for _, part := range result.Candidates[0].Content.Parts {
    if part.Text != "" {
      text.WriteString(part.Text)
    }
  }
  return text.String(), nil
}
