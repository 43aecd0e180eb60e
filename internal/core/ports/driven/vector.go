package driven

import (
	"context"

	"github.com/alcove-ai/alcove/internal/core/domain"
)

// VectorStore is a persistent vector-indexed document store.
// Backed by sqvect (embedded SQLite) for similarity search.
//
// A store instance is bound to one embedding service; every vector it holds
// must have the dimension that service reports. Feeding it vectors of a
// different dimension returns an error satisfying domain.IsDimensionMismatch,
// which the store manager recovers from by wiping and reopening the store.
type VectorStore interface {
	// AddTexts embeds and persists the given texts with parallel metadata.
	// texts and metadatas must be equal length; a nil metadatas gets an
	// empty mapping per text.
	AddTexts(ctx context.Context, texts []string, metadatas []map[string]string) error

	// Search embeds the query and returns the k most similar documents.
	Search(ctx context.Context, query string, k int) ([]domain.DocumentRecord, error)

	// Flush persists any buffered writes. The store manager swallows
	// Flush failures since AddTexts already succeeded durably.
	Flush(ctx context.Context) error

	// Close releases the store handle.
	Close() error
}

// VectorStoreProvider opens vector stores for one persist directory and
// can destructively wipe that directory when the index is incompatible
// with the current embedding dimension.
type VectorStoreProvider interface {
	// Open opens or creates the persistent index bound to the embedder.
	Open(ctx context.Context, embedder EmbeddingService) (VectorStore, error)

	// Wipe removes the persist directory's contents and recreates it
	// empty. All stored vectors are lost. Used for dimension-mismatch
	// recovery; vectors of different dimension cannot coexist in one index.
	Wipe() error

	// Dir returns the persist directory path.
	Dir() string
}
