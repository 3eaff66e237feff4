package services

import (
  "context"
  "errors"
  "fmt"
  "strings"
  "testing"

  "github.com/SarveshSonkusre02/researcher/internal/logger"
)

type fakeGenerator struct {
  response string
  err      error
  prompts  []string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
  f.prompts = append(f.prompts, prompt)
  if f.err != nil {
    return "", f.err
  }
  return f.response, nil
}

func newResearchServiceForTest(t *testing.T, gen TextGenerator) ResearchService {
  t.Helper()
  log, err := logger.New("test")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  return NewResearchService(log, gen)
}

func TestGenerateResearchParsesDirectJSON(t *testing.T) {
  gen := &fakeGenerator{response: "  {\"questions\":[],\"framework\":{}}  "}
  svc := newResearchServiceForTest(t, gen)

  result, err := svc.GenerateResearch(context.Background(), GenerateInput{Company: "Acme"})
  if err != nil {
    t.Fatalf("GenerateResearch: %v", err)
  }
  if len(result.Questions) != 0 {
    t.Fatalf("questions: want=0 got=%d", len(result.Questions))
  }
  if result.Framework.BusinessModel != "" {
    t.Fatalf("business_model: want empty got=%q", result.Framework.BusinessModel)
  }
}

func TestGenerateResearchRecoversEmbeddedJSON(t *testing.T) {
  gen := &fakeGenerator{
    response: "Here is the result:\n{\"questions\":[\"a\"],\"framework\":{\"business_model\":\"x\",\"risks\":[],\"growth_drivers\":[]}} Thanks!",
  }
  svc := newResearchServiceForTest(t, gen)

  result, err := svc.GenerateResearch(context.Background(), GenerateInput{Company: "Acme"})
  if err != nil {
    t.Fatalf("GenerateResearch: %v", err)
  }
  if len(result.Questions) != 1 || result.Questions[0] != "a" {
    t.Fatalf("questions: want=[a] got=%v", result.Questions)
  }
  if result.Framework.BusinessModel != "x" {
    t.Fatalf("business_model: want=%q got=%q", "x", result.Framework.BusinessModel)
  }
}

func TestGenerateResearchFailsOnNonJSON(t *testing.T) {
  gen := &fakeGenerator{response: "no json here"}
  svc := newResearchServiceForTest(t, gen)

  _, err := svc.GenerateResearch(context.Background(), GenerateInput{Company: "Acme"})
  if err == nil {
    t.Fatal("expected parse error, got nil")
  }
  var parseErr *GenerationParseError
  if !errors.As(err, &parseErr) {
    t.Fatalf("error type: want GenerationParseError got %T", err)
  }
  if parseErr.Raw != "no json here" {
    t.Fatalf("raw text: want=%q got=%q", "no json here", parseErr.Raw)
  }
}

func TestGenerateResearchNormalizesMissingFramework(t *testing.T) {
  gen := &fakeGenerator{response: `{"questions":["q1"]}`}
  svc := newResearchServiceForTest(t, gen)

  result, err := svc.GenerateResearch(context.Background(), GenerateInput{Company: "Acme"})
  if err != nil {
    t.Fatalf("GenerateResearch: %v", err)
  }
  if len(result.Questions) != 1 || result.Questions[0] != "q1" {
    t.Fatalf("questions: want=[q1] got=%v", result.Questions)
  }
  if result.Framework.BusinessModel != "" {
    t.Fatalf("business_model: want empty got=%q", result.Framework.BusinessModel)
  }
  if result.Framework.Risks == nil || len(result.Framework.Risks) != 0 {
    t.Fatalf("risks: want empty list got=%v", result.Framework.Risks)
  }
  if result.Framework.GrowthDrivers == nil || len(result.Framework.GrowthDrivers) != 0 {
    t.Fatalf("growth_drivers: want empty list got=%v", result.Framework.GrowthDrivers)
  }
}

func TestGenerateResearchWrapsGeneratorFailure(t *testing.T) {
  gen := &fakeGenerator{err: fmt.Errorf("connection refused")}
  svc := newResearchServiceForTest(t, gen)

  _, err := svc.GenerateResearch(context.Background(), GenerateInput{Company: "Acme"})
  if err == nil {
    t.Fatal("expected service error, got nil")
  }
  var svcErr *GenerationServiceError
  if !errors.As(err, &svcErr) {
    t.Fatalf("error type: want GenerationServiceError got %T", err)
  }
}

func TestBuildResearchPromptEmbedsCompanyAndTicker(t *testing.T) {
  prompt := buildResearchPrompt(GenerateInput{Company: "Acme", Ticker: "ACME"})
  if !strings.Contains(prompt, "Acme (ACME)") {
    t.Fatalf("prompt missing company/ticker: %q", prompt)
  }

  prompt = buildResearchPrompt(GenerateInput{Company: "Acme"})
  if !strings.Contains(prompt, "Acme (N/A)") {
    t.Fatalf("prompt missing N/A ticker fallback: %q", prompt)
  }
}

func TestBuildResearchPromptHonorsSectorAndCountry(t *testing.T) {
  prompt := buildResearchPrompt(GenerateInput{Company: "Acme", Sector: "Semiconductors", Country: "Taiwan"})
  if !strings.Contains(prompt, "Semiconductors sector") {
    t.Fatalf("prompt missing sector: %q", prompt)
  }
  if !strings.Contains(prompt, "based in Taiwan") {
    t.Fatalf("prompt missing country: %q", prompt)
  }

  prompt = buildResearchPrompt(GenerateInput{Company: "Acme"})
  if strings.Contains(prompt, "sector.") || strings.Contains(prompt, "based in") {
    t.Fatalf("prompt should omit context lines when unset: %q", prompt)
  }
}
