package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"

  "github.com/SarveshSonkusre02/researcher/internal/logger"
)

type GenerateInput struct {
  Company string
  Ticker  string
  Sector  string
  Country string
}

type Framework struct {
  BusinessModel string   `json:"business_model"`
  Risks         []string `json:"risks"`
  GrowthDrivers []string `json:"growth_drivers"`
}

type ResearchResult struct {
  Questions []string  `json:"questions"`
  Framework Framework `json:"framework"`
}

type ResearchService interface {
  GenerateResearch(ctx context.Context, input GenerateInput) (*ResearchResult, error)
}

type researchService struct {
  log       *logger.Logger
  generator TextGenerator
}

func NewResearchService(baseLog *logger.Logger, generator TextGenerator) ResearchService {
  serviceLog := baseLog.With("service", "ResearchService")
  return &researchService{log: serviceLog, generator: generator}
}

func (s *researchService) GenerateResearch(ctx context.Context, input GenerateInput) (*ResearchResult, error) {
  prompt := buildResearchPrompt(input)

  raw, err := s.generator.GenerateText(ctx, prompt)
  if err != nil {
    s.log.Error("Generation call failed", "company", input.Company, "error", err)
    return nil, &GenerationServiceError{Err: err}
  }

  result, err := parseResearchJSON(raw)
  if err != nil {
    s.log.Error("Generation output unparseable", "company", input.Company, "error", err)
    return nil, err
  }

  normalizeResearch(result)
  return result, nil
}

func buildResearchPrompt(input GenerateInput) string {
  ticker := input.Ticker
  if ticker == "" {
    ticker = "N/A"
  }

  var extra strings.Builder
  if input.Sector != "" {
    extra.WriteString(fmt.Sprintf("\nThe company operates in the %s sector.", input.Sector))
  }
  if input.Country != "" {
    extra.WriteString(fmt.Sprintf("\nThe company is based in %s.", input.Country))
  }

  return fmt.Sprintf(`You are an expert equity research assistant with deep knowledge of financial analysis, corporate strategy, and market dynamics.

Generate structured research data for the company %s (%s) in JSON ONLY.%s The JSON must strictly follow this schema:

{
  "questions": [ "string", "string", "string" ],
  "framework": {
    "business_model": "string",
    "risks": [ "string", "string" ],
    "growth_drivers": [ "string", "string" ]
  }
}

Requirements:
1. Research Questions: Provide 5-7 thought-provoking and insightful questions that an analyst might ask when evaluating this company. They should cover strategy, competitive positioning, market opportunities, and potential challenges.
2. Business Model: Provide a concise but informative explanation of the company's business model, including revenue streams, key customers, value proposition, and competitive advantages.
3. Risks: List 3-5 major risks facing the company. Include financial, operational, regulatory, and market risks. Each risk should be actionable or analyzable.
4. Growth Drivers: List 3-5 drivers that could contribute to future growth, such as market trends, product innovation, geographic expansion, or partnerships.
5. Avoid vague terms. Be specific and practical.
6. Format the JSON cleanly with arrays of strings. Do not include extra commentary outside the JSON.`, input.Company, ticker, extra.String())
}

// parseResearchJSON applies the two-step parsing policy: direct parse of the
// trimmed output, then a single recovery attempt on the substring between the
// first '{' and the last '}'. Anything past that is a GenerationParseError.
func parseResearchJSON(raw string) (*ResearchResult, error) {
  text := strings.TrimSpace(raw)

  var result ResearchResult
  if err := json.Unmarshal([]byte(text), &result); err == nil {
    return &result, nil
  }

  start := strings.Index(text, "{")
  end := strings.LastIndex(text, "}")
  if start == -1 || end == -1 || end < start {
    return nil, &GenerationParseError{Err: fmt.Errorf("no JSON object found in output"), Raw: text}
  }

  result = ResearchResult{}
  if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
    return nil, &GenerationParseError{Err: err, Raw: text}
  }
  return &result, nil
}

// normalizeResearch fills gaps rather than rejecting: a parseable but
// structurally incomplete response comes back with empty lists and strings,
// never an error.
func normalizeResearch(r *ResearchResult) {
  if r.Questions == nil {
    r.Questions = []string{}
  }
  if r.Framework.Risks == nil {
    r.Framework.Risks = []string{}
  }
  if r.Framework.GrowthDrivers == nil {
    r.Framework.GrowthDrivers = []string{}
  }
}
