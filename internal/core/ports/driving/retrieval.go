package driving

import (
	"context"

	"github.com/alcove-ai/alcove/internal/core/domain"
)

// RetrievalService provides similarity retrieval and question answering
// to external actors.
type RetrievalService interface {
	// Retrieve returns the k documents most relevant to the query.
	// Served by the vector store when available, else by the fallback
	// store's lexical search; every result has non-empty Text and a
	// non-nil Metadata mapping regardless of path.
	Retrieve(ctx context.Context, query string, k int) ([]domain.DocumentRecord, error)

	// Ask retrieves context for the question and composes an answer.
	// Answer-provider failures surface as a tagged string in the result,
	// never as an error.
	Ask(ctx context.Context, question string, k int) (domain.Answer, error)

	// Status reports the active embedding tier, vector store availability
	// and fallback record count, so operators can tell a real retrieval
	// from a degraded one.
	Status(ctx context.Context) (domain.StoreStatus, error)
}
