package driven

import "context"

// AnswerService maps a prompt to an answer string.
// This is an optional service - when the remote provider is not configured,
// a deterministic stub answerer is used instead.
//
// Concrete adapters are responsible for normalising whatever response shape
// their provider returns into a plain string at this boundary.
type AnswerService interface {
	// Answer produces a completion for the given prompt.
	Answer(ctx context.Context, prompt string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
