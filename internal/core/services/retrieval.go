package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
	"github.com/alcove-ai/alcove/internal/core/ports/driving"
	"github.com/alcove-ai/alcove/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService is the single retrieval entry point: vector search
// first, lexical fallback search when the vector store is absent or
// failing. Results are uniform regardless of path.
type RetrievalService struct {
	manager  *StoreManager
	fallback driven.FallbackStore
	answerer driven.AnswerService
}

// NewRetrievalService creates a retrieval service. answerer is optional;
// without it Ask uses no model and reports a stub-shaped failure.
func NewRetrievalService(manager *StoreManager, fallback driven.FallbackStore, answerer driven.AnswerService) *RetrievalService {
	return &RetrievalService{
		manager:  manager,
		fallback: fallback,
		answerer: answerer,
	}
}

// Retrieve returns the k most relevant documents for the query.
// An empty result from a healthy vector store is a valid answer and is
// returned as-is; only search failure or an absent store degrades to the
// fallback store's lexical search.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, k int) ([]domain.DocumentRecord, error) {
	results, _, err := s.retrieve(ctx, query, k)
	return results, err
}

// retrieve also reports whether the lexical fallback served the query.
func (s *RetrievalService) retrieve(ctx context.Context, query string, k int) ([]domain.DocumentRecord, bool, error) {
	logger.Section("Retrieve")
	if k <= 0 {
		k = domain.DefaultRetrieveK
	}

	store, _ := s.manager.Open(ctx)
	if store != nil {
		defer store.Close()

		results, err := s.manager.Search(ctx, store, query, k)
		if err == nil {
			logger.Debug("Vector search returned %d results", len(results))
			return normalize(results), false, nil
		}
		logger.Warn("Vector search failed, degrading to lexical fallback: %v", err)
	} else {
		logger.Info("No vector store available; using lexical fallback search")
	}

	results, err := s.fallback.Search(ctx, query, k)
	if err != nil {
		return nil, true, err
	}
	logger.Debug("Fallback search returned %d results", len(results))
	return normalize(results), true, nil
}

// answerPrompt frames retrieved context for the answer provider.
const answerPrompt = "Use the following retrieved context to answer the question:\n\n%s\n\nQuestion: %s\nAnswer concisely:"

// Ask retrieves context for the question and composes an answer.
// Answer-provider failures are contained: the result carries a tagged
// error string, never an error value.
func (s *RetrievalService) Ask(ctx context.Context, question string, k int) (domain.Answer, error) {
	sources, degraded, err := s.retrieve(ctx, question, k)
	if err != nil {
		return domain.Answer{}, err
	}

	answer := domain.Answer{
		Sources:  sources,
		Degraded: degraded,
	}
	if s.answerer == nil {
		answer.Result = "[LLM_ERROR] no answer provider configured"
		return answer, nil
	}

	answer.Result = s.compose(ctx, question, sources)
	return answer, nil
}

// compose builds the prompt and calls the answer provider, normalising
// failure to a tagged string.
func (s *RetrievalService) compose(ctx context.Context, question string, sources []domain.DocumentRecord) string {
	var contextParts []string
	for _, doc := range sources {
		if doc.Text != "" {
			contextParts = append(contextParts, doc.Text)
		}
	}

	prompt := fmt.Sprintf(answerPrompt, strings.Join(contextParts, "\n\n"), question)
	result, err := s.answerer.Answer(ctx, prompt)
	if err != nil {
		logger.Warn("Answer provider failed: %v", err)
		return "[LLM_ERROR] " + err.Error()
	}
	return result
}

// Status reports which retrieval paths are currently live.
func (s *RetrievalService) Status(ctx context.Context) (domain.StoreStatus, error) {
	store, embedder := s.manager.Open(ctx)
	_, tier := s.manager.Embedder(ctx)
	if store != nil {
		store.Close()
	}

	count, err := s.fallback.Count(ctx)
	if err != nil {
		return domain.StoreStatus{}, err
	}

	status := domain.StoreStatus{
		Tier:            tier,
		EmbeddingModel:  embedder.ModelName(),
		VectorAvailable: store != nil,
		FallbackRecords: count,
		FallbackPath:    s.fallback.Path(),
	}
	if s.manager.provider != nil {
		status.VectorDir = s.manager.provider.Dir()
	}
	return status, nil
}

// normalize guarantees the uniform result shape: non-nil metadata on every
// record regardless of which path produced it.
func normalize(results []domain.DocumentRecord) []domain.DocumentRecord {
	if results == nil {
		return []domain.DocumentRecord{}
	}
	for i := range results {
		if results[i].Metadata == nil {
			results[i].Metadata = map[string]string{}
		}
	}
	return results
}
