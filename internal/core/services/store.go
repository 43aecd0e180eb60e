package services

import (
	"context"
	"fmt"

	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
	"github.com/alcove-ai/alcove/internal/logger"
)

// EmbedderResolver produces the highest-priority usable embedding service.
// It cannot fail: the final tier is a deterministic offline stub.
type EmbedderResolver func(ctx context.Context, settings domain.EmbeddingSettings) (driven.EmbeddingService, domain.EmbeddingTier)

// StoreManager owns the lifecycle of the persistent vector store:
// open-or-create, write, and destructive reinitialisation when the index
// is incompatible with the active embedding dimension.
//
// Dimension mismatches occur whenever the embedding tier changes between
// runs (stub previously, real provider now). Vectors of different
// dimension cannot coexist in one index, so recovery wipes the persist
// directory and retries exactly once.
type StoreManager struct {
	provider driven.VectorStoreProvider
	resolver EmbedderResolver
	settings domain.EmbeddingSettings

	embedder driven.EmbeddingService
	tier     domain.EmbeddingTier
}

// NewStoreManager creates a store manager. provider may be nil, in which
// case Open never yields a store and callers degrade to the fallback path.
func NewStoreManager(provider driven.VectorStoreProvider, resolver EmbedderResolver, settings domain.EmbeddingSettings) *StoreManager {
	return &StoreManager{
		provider: provider,
		resolver: resolver,
		settings: settings,
	}
}

// Embedder returns the resolved embedding service, resolving on first use.
// Always non-nil: resolution degrades to the stub tier rather than failing.
func (m *StoreManager) Embedder(ctx context.Context) (driven.EmbeddingService, domain.EmbeddingTier) {
	if m.embedder == nil {
		m.embedder, m.tier = m.resolver(ctx, m.settings)
	}
	return m.embedder, m.tier
}

// Open attempts to open or create the persistent vector store.
// The resolved embedding service is always returned, even when no store
// could be opened, so callers retain fallback capability.
//
// An open failure matching the dimension pattern wipes the persist
// directory and retries once; any remaining failure yields a nil store.
func (m *StoreManager) Open(ctx context.Context) (driven.VectorStore, driven.EmbeddingService) {
	embedder, _ := m.Embedder(ctx)
	if m.provider == nil {
		logger.Warn("No vector store configured; using fallback store")
		return nil, embedder
	}

	store, err := m.provider.Open(ctx, embedder)
	if err == nil {
		return store, embedder
	}
	logger.Warn("Failed to open vector store at %s: %v", m.provider.Dir(), err)

	if !domain.IsDimensionMismatch(err) {
		return nil, embedder
	}

	if err := m.provider.Wipe(); err != nil {
		logger.Warn("Failed to reinitialize vector store directory: %v", err)
		return nil, embedder
	}
	store, err = m.provider.Open(ctx, embedder)
	if err != nil {
		logger.Warn("Vector store reopen after reinit failed: %v", err)
		return nil, embedder
	}
	logger.Info("Vector store reinitialized at %s", m.provider.Dir())
	return store, embedder
}

// Add writes texts into the vector store. A persist/flush failure after a
// successful add is swallowed. An add failure matching the dimension
// pattern reinitialises the store, reopens a fresh handle and retries
// exactly once; non-matching failures escalate immediately.
//
// The returned handle replaces the given one when a reinit occurred; on
// error the caller must degrade to the fallback store.
func (m *StoreManager) Add(ctx context.Context, store driven.VectorStore, texts []string, metadatas []map[string]string) (driven.VectorStore, error) {
	err := store.AddTexts(ctx, texts, metadatas)
	if err == nil {
		m.flush(ctx, store)
		return store, nil
	}
	logger.Warn("Vector store add failed: %v", err)

	if !domain.IsDimensionMismatch(err) {
		return store, fmt.Errorf("%w: add failed: %w", domain.ErrStoreUnavailable, err)
	}

	logger.Info("Detected embedding dimension mismatch; reinitializing vector store and retrying")
	store.Close()
	if err := m.provider.Wipe(); err != nil {
		return nil, fmt.Errorf("%w: reinit failed: %w", domain.ErrStoreUnavailable, err)
	}

	embedder, _ := m.Embedder(ctx)
	fresh, err := m.provider.Open(ctx, embedder)
	if err != nil {
		return nil, fmt.Errorf("%w: reopen after reinit failed: %w", domain.ErrStoreUnavailable, err)
	}
	if err := fresh.AddTexts(ctx, texts, metadatas); err != nil {
		return fresh, fmt.Errorf("%w: retry after reinit failed: %w", domain.ErrStoreUnavailable, err)
	}
	m.flush(ctx, fresh)
	return fresh, nil
}

// Search delegates to the store's similarity search. Callers degrade to
// the fallback store's lexical search on error.
func (m *StoreManager) Search(ctx context.Context, store driven.VectorStore, query string, k int) ([]domain.DocumentRecord, error) {
	results, err := store.Search(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	return results, nil
}

// flush persists buffered writes; failures are logged and swallowed
// because the add itself already succeeded durably.
func (m *StoreManager) flush(ctx context.Context, store driven.VectorStore) {
	if err := store.Flush(ctx); err != nil {
		logger.Warn("Vector store flush failed (ignored): %v", err)
	}
}
