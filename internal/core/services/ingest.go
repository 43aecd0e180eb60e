package services

import (
	"context"
	"fmt"

	"github.com/alcove-ai/alcove/internal/chunk"
	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
	"github.com/alcove-ai/alcove/internal/core/ports/driving"
	"github.com/alcove-ai/alcove/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService admits documents into the store: the vector store when it
// is healthy, the fallback store otherwise. It fails only when both
// persistence paths are exhausted.
type IngestService struct {
	manager  *StoreManager
	fallback driven.FallbackStore
	producer driven.TextProducer
	splitter *chunk.Splitter
}

// NewIngestService creates an ingest service. producer is optional and
// only needed for IngestSource.
func NewIngestService(manager *StoreManager, fallback driven.FallbackStore, producer driven.TextProducer) *IngestService {
	return &IngestService{
		manager:  manager,
		fallback: fallback,
		producer: producer,
		splitter: chunk.New(),
	}
}

// Ingest vectorizes and persists texts with parallel metadata.
// Empty texts (failed extractions) are filtered before admission.
func (s *IngestService) Ingest(ctx context.Context, texts []string, metadatas []map[string]string) error {
	logger.Section("Ingest")
	if metadatas != nil && len(metadatas) != len(texts) {
		return fmt.Errorf("%w: %d texts with %d metadata entries", domain.ErrInvalidInput, len(texts), len(metadatas))
	}

	texts, metadatas = filterEmpty(texts, metadatas)
	if len(texts) == 0 {
		logger.Debug("Nothing to ingest after filtering empty texts")
		return nil
	}

	store, embedder := s.manager.Open(ctx)
	if store != nil {
		fresh, err := s.manager.Add(ctx, store, texts, metadatas)
		if fresh != nil {
			defer fresh.Close()
		}
		if err == nil {
			logger.Info("Added %d documents to vector store", len(texts))
			return nil
		}
		logger.Warn("Writing to fallback store after vector store failure: %v", err)
		if fbErr := s.fallback.Append(ctx, texts, metadatas, embedder); fbErr != nil {
			return fmt.Errorf("ingest: vector store failed (%v); fallback store %s failed: %w",
				err, s.fallback.Path(), fbErr)
		}
		return nil
	}

	if err := s.fallback.Append(ctx, texts, metadatas, embedder); err != nil {
		return fmt.Errorf("ingest: no vector store; fallback store %s failed: %w", s.fallback.Path(), err)
	}
	return nil
}

// IngestSource fetches text from an external source and ingests it with a
// "source" metadata entry.
func (s *IngestService) IngestSource(ctx context.Context, source string) error {
	if s.producer == nil {
		return fmt.Errorf("%w: no text producer configured", domain.ErrInvalidInput)
	}

	text, err := s.producer.Produce(ctx, source)
	if err != nil {
		return fmt.Errorf("produce %s: %w", source, err)
	}
	if text == "" {
		return fmt.Errorf("%w: no text extracted from %s", domain.ErrInvalidInput, source)
	}

	// Long pages are split so each piece embeds and retrieves well.
	chunks := s.splitter.Split(text)
	metadatas := make([]map[string]string, len(chunks))
	for i := range chunks {
		metadatas[i] = map[string]string{"source": source}
	}
	logger.Debug("Produced %d chunk(s) from %s", len(chunks), source)

	return s.Ingest(ctx, chunks, metadatas)
}

// filterEmpty drops empty texts and their parallel metadata entries.
func filterEmpty(texts []string, metadatas []map[string]string) ([]string, []map[string]string) {
	kept := texts[:0:0]
	var keptMeta []map[string]string
	for i, text := range texts {
		if text == "" {
			logger.Debug("Dropping empty text at index %d", i)
			continue
		}
		kept = append(kept, text)
		if metadatas != nil {
			keptMeta = append(keptMeta, metadatas[i])
		}
	}
	return kept, keptMeta
}
