package embedding

import (
	"context"

	"github.com/alcove-ai/alcove/internal/core/ports/driven"
)

// Ensure StubEmbedder implements the interface.
var _ driven.EmbeddingService = (*StubEmbedder)(nil)

// Stub embedder geometry. The vectors are a pure function of the input
// text and depend on no external resource, which keeps ingestion and
// retrieval operational in tests and disconnected environments.
const (
	// StubDimensions is the fixed vector size of the stub embedder.
	StubDimensions = 32

	// stubWindow is how many leading characters contribute to the vector.
	stubWindow = 256
)

// StubEmbedder is the deterministic offline embedding tier.
// Each character of the (truncated, NUL-padded) input maps to
// ord(c) mod 97 / 97.0. Embedding quality is intentionally poor; the tier
// exists purely so the system is always usable offline.
type StubEmbedder struct{}

// NewStubEmbedder creates the deterministic offline embedder.
func NewStubEmbedder() *StubEmbedder {
	return &StubEmbedder{}
}

// Embed generates the stub vector for the given text.
func (s *StubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	return stubVector(text), nil
}

// EmbedBatch generates stub vectors for multiple texts.
func (s *StubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = stubVector(text)
	}
	return embeddings, nil
}

// Dimensions returns the fixed stub vector size.
func (s *StubEmbedder) Dimensions() int {
	return StubDimensions
}

// ModelName returns the name of the stub model.
func (s *StubEmbedder) ModelName() string {
	return "deterministic-stub"
}

// Ping always succeeds; the stub needs no external resource.
func (s *StubEmbedder) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *StubEmbedder) Close() error {
	return nil
}

// stubVector maps text to a fixed-size vector: truncate to the window,
// NUL-pad to the vector size, ord(c) mod 97 / 97.0 per character.
func stubVector(text string) []float32 {
	runes := []rune(text)
	if len(runes) > stubWindow {
		runes = runes[:stubWindow]
	}

	vec := make([]float32, StubDimensions)
	for i := 0; i < StubDimensions; i++ {
		var r rune // NUL padding beyond the text
		if i < len(runes) {
			r = runes[i]
		}
		vec[i] = float32(r%97) / 97.0
	}
	return vec
}
