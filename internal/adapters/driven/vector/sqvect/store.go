// Package sqvect provides a persistent vector store adapter backed by
// sqvect's embedded SQLite vector database.
package sqvect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	core "github.com/liliang-cn/sqvect/v2/pkg/core"

	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
	"github.com/alcove-ai/alcove/internal/logger"
)

// dbFileName is the SQLite database file inside the persist directory.
const dbFileName = "vectors.db"

// Ensure the adapter implements its ports.
var (
	_ driven.VectorStoreProvider = (*Provider)(nil)
	_ driven.VectorStore         = (*Store)(nil)
)

// Provider opens sqvect stores for one persist directory.
type Provider struct {
	dir        string
	collection string
}

// NewProvider creates a provider for the given persist directory and
// collection name.
func NewProvider(dir, collection string) *Provider {
	if collection == "" {
		collection = domain.DefaultCollection
	}
	return &Provider{dir: dir, collection: collection}
}

// Dir returns the persist directory path.
func (p *Provider) Dir() string {
	return p.dir
}

// Wipe removes the persist directory's contents and recreates it empty.
// All stored vectors are lost.
func (p *Provider) Wipe() error {
	logger.Warn("Reinitializing vector store directory: %s", p.dir)
	if err := os.RemoveAll(p.dir); err != nil {
		return fmt.Errorf("remove persist directory %s: %w", p.dir, err)
	}
	if err := os.MkdirAll(p.dir, 0700); err != nil {
		return fmt.Errorf("recreate persist directory %s: %w", p.dir, err)
	}
	return nil
}

// Open opens or creates the persistent index bound to the embedder.
// An existing collection whose dimension differs from the embedder's
// returns an error satisfying domain.IsDimensionMismatch so the store
// manager can wipe and retry.
func (p *Provider) Open(ctx context.Context, embedder driven.EmbeddingService) (driven.VectorStore, error) {
	if err := os.MkdirAll(p.dir, 0700); err != nil {
		return nil, fmt.Errorf("create persist directory %s: %w", p.dir, err)
	}

	dims := embedder.Dimensions()
	db, err := core.New(filepath.Join(p.dir, dbFileName), dims)
	if err != nil {
		return nil, fmt.Errorf("create vector store: %w", err)
	}
	if err := db.Init(ctx); err != nil {
		return nil, fmt.Errorf("init vector store: %w", err)
	}

	col, err := db.GetCollection(ctx, p.collection)
	if err != nil {
		// Collection does not exist yet; create it at the embedder's
		// dimension.
		if _, err := db.CreateCollection(ctx, p.collection, dims); err != nil {
			db.Close()
			return nil, fmt.Errorf("create collection %s: %w", p.collection, err)
		}
	} else if col.Dimensions != 0 && col.Dimensions != dims {
		db.Close()
		return nil, fmt.Errorf("open collection %s: %w: index has %d, embedder %q has %d",
			p.collection, domain.ErrDimensionMismatch, col.Dimensions, embedder.ModelName(), dims)
	}

	return &Store{
		db:         db,
		collection: p.collection,
		embedder:   embedder,
		dims:       dims,
	}, nil
}

// Store is a sqvect-backed vector store bound to one embedding service.
type Store struct {
	db         *core.SQLiteStore
	collection string
	embedder   driven.EmbeddingService
	dims       int
}

// AddTexts embeds and persists the given texts with parallel metadata.
func (s *Store) AddTexts(ctx context.Context, texts []string, metadatas []map[string]string) error {
	if len(texts) == 0 {
		return nil
	}
	if metadatas == nil {
		metadatas = make([]map[string]string, len(texts))
	}
	if len(metadatas) != len(texts) {
		return fmt.Errorf("%w: %d texts with %d metadata entries", domain.ErrInvalidInput, len(texts), len(metadatas))
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed %d texts: %w", len(texts), err)
	}

	records := make([]*core.Embedding, len(texts))
	for i, text := range texts {
		if len(vectors[i]) != s.dims {
			return fmt.Errorf("add texts: %w: index has %d, embedding has %d",
				domain.ErrDimensionMismatch, s.dims, len(vectors[i]))
		}
		metadata := metadatas[i]
		if metadata == nil {
			metadata = map[string]string{}
		}
		records[i] = &core.Embedding{
			ID:         uuid.NewString(),
			Collection: s.collection,
			Vector:     vectors[i],
			Content:    text,
			Metadata:   metadata,
		}
	}

	if err := s.db.UpsertBatch(ctx, records); err != nil {
		return fmt.Errorf("upsert %d records: %w", len(records), err)
	}
	return nil
}

// Search embeds the query and returns the k most similar documents.
func (s *Store) Search(ctx context.Context, query string, k int) ([]domain.DocumentRecord, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := s.db.Search(ctx, vector, core.SearchOptions{
		Collection: s.collection,
		TopK:       k,
	})
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	results := make([]domain.DocumentRecord, 0, len(hits))
	for _, hit := range hits {
		metadata := hit.Metadata
		if metadata == nil {
			metadata = map[string]string{}
		}
		results = append(results, domain.DocumentRecord{
			ID:        hit.ID,
			Text:      hit.Content,
			Metadata:  metadata,
			Embedding: hit.Vector,
		})
	}
	return results, nil
}

// Flush persists buffered writes. sqvect writes through SQLite on every
// upsert, so there is nothing extra to do.
func (s *Store) Flush(_ context.Context) error {
	return nil
}

// Close releases the store handle.
func (s *Store) Close() error {
	return s.db.Close()
}
