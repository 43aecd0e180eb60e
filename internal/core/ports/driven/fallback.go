package driven

import (
	"context"

	"github.com/alcove-ai/alcove/internal/core/domain"
)

// FallbackStore is a degraded on-disk document store used when no vector
// store is available or when it fails. Backed by a single JSON file holding
// the store's entire state.
//
// Search is lexical (token overlap), not semantic. This is an intentional
// quality degradation versus the vector store: the fallback must stay
// usable with no embedding provider at all, so it never calls one at
// query time.
type FallbackStore interface {
	// Append loads the existing records (a corrupt or absent file is
	// treated as empty), embeds the texts via embedder, appends one record
	// per text with a fresh sequential "doc-<n>" id, and rewrites the file
	// atomically in full.
	Append(ctx context.Context, texts []string, metadatas []map[string]string, embedder EmbeddingService) error

	// Search tokenizes the query and every stored text by lowercase
	// whitespace splitting and returns the k records with the largest
	// token-set intersection, ties broken by stored order. An absent file
	// yields an empty result, not an error.
	Search(ctx context.Context, query string, k int) ([]domain.DocumentRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Path returns the store file location.
	Path() string
}
