// Package llm hosts answer service adapters and the offline stub answerer.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/alcove-ai/alcove/internal/core/ports/driven"
)

// Ensure StubAnswerer implements the interface.
var _ driven.AnswerService = (*StubAnswerer)(nil)

// previewLength is how much of the prompt the stub echoes back.
const previewLength = 400

// StubAnswerer is the offline answer provider used when no remote model is
// configured. It returns a clearly tagged preview of the prompt so callers
// and tests can tell a stub answer from a real one.
type StubAnswerer struct {
	model string
}

// NewStubAnswerer creates a stub answerer reporting the given model name.
func NewStubAnswerer(model string) *StubAnswerer {
	if model == "" {
		model = "stub"
	}
	return &StubAnswerer{model: model}
}

// Answer returns a deterministic tagged preview of the prompt.
func (s *StubAnswerer) Answer(_ context.Context, prompt string) (string, error) {
	preview := prompt
	if len(preview) > previewLength {
		preview = preview[:previewLength]
	}
	preview = strings.ReplaceAll(preview, "\n", " ")
	return fmt.Sprintf("[LLM_STUB] model=%s | prompt_preview=%s", s.model, preview), nil
}

// ModelName returns the stub model name.
func (s *StubAnswerer) ModelName() string {
	return s.model
}

// Close releases resources.
func (s *StubAnswerer) Close() error {
	return nil
}
