package services

import (
  "errors"
  "fmt"
)

var (
  ErrNoteNotFound      = errors.New("note not found")
  ErrUnsupportedFormat = errors.New("unsupported export format")
)

// GenerationServiceError wraps a failed round trip to the model provider.
type GenerationServiceError struct {
  Err error
}

func (e *GenerationServiceError) Error() string {
  return fmt.Sprintf("AI generation failed: %v", e.Err)
}

func (e *GenerationServiceError) Unwrap() error { return e.Err }

// GenerationParseError means the model output could not be parsed as JSON,
// even after the brace-slice recovery attempt. Raw keeps the full model
// output for diagnosis.
type GenerationParseError struct {
  Err error
  Raw string
}

func (e *GenerationParseError) Error() string {
  return fmt.Sprintf("failed to parse AI JSON: %v", e.Err)
}

func (e *GenerationParseError) Unwrap() error { return e.Err }
