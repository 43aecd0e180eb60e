package embedding

import (
	"context"
	"fmt"

	"github.com/alcove-ai/alcove/internal/core/ports/driven"
)

// BatchFunc is the raw shape an embedding provider needs to expose: one
// batch function mapping texts to equal-length vectors of uniform dimension.
type BatchFunc func(ctx context.Context, texts []string) ([][]float32, error)

// Ensure FuncEmbedder implements the interface.
var _ driven.EmbeddingService = (*FuncEmbedder)(nil)

// FuncEmbedder adapts a raw BatchFunc into the two-method EmbeddingService
// shape the vector store integration expects. Wrapping is the only
// behaviour; there is no caching.
type FuncEmbedder struct {
	fn         BatchFunc
	dimensions int
	modelName  string
}

// NewFuncEmbedder wraps fn as an EmbeddingService reporting the given
// dimension and model name.
func NewFuncEmbedder(fn BatchFunc, dimensions int, modelName string) *FuncEmbedder {
	return &FuncEmbedder{
		fn:         fn,
		dimensions: dimensions,
		modelName:  modelName,
	}
}

// Embed generates a vector embedding for a single text.
// Equal to EmbedBatch([text])[0].
func (f *FuncEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := f.fn(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embed %q: no embedding returned", f.modelName)
	}
	return embeddings[0], nil
}

// EmbedBatch generates embeddings for multiple texts.
func (f *FuncEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return f.fn(ctx, texts)
}

// Dimensions returns the embedding vector size.
func (f *FuncEmbedder) Dimensions() int {
	return f.dimensions
}

// ModelName returns the name of the wrapped model.
func (f *FuncEmbedder) ModelName() string {
	return f.modelName
}

// Ping always succeeds; reachability is the wrapped provider's concern.
func (f *FuncEmbedder) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (f *FuncEmbedder) Close() error {
	return nil
}
