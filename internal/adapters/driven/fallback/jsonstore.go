// Package fallback provides the degraded on-disk document store used when
// the vector store is unavailable. State is a single JSON array; search is
// lexical token overlap, not vector similarity.
package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
	"github.com/alcove-ai/alcove/internal/logger"
)

// Ensure JSONStore implements the interface.
var _ driven.FallbackStore = (*JSONStore)(nil)

// record is the persisted JSON shape of one document.
type record struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Metadata  map[string]string `json:"metadata"`
	Embedding []float32         `json:"embedding"`
}

// JSONStore is an append-only document store persisted as one
// pretty-printed JSON array. Every mutation is a full read-modify-write;
// the mutex serialises writers within the process so concurrent appends
// cannot lose records on the full-file rewrite.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a fallback store at the given file path.
// The file is created lazily on first append.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the store file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Append embeds the texts and appends one record per text with fresh
// sequential "doc-<n>" ids, rewriting the file atomically in full.
// A corrupt existing file is discarded (logged), not merged.
func (s *JSONStore) Append(ctx context.Context, texts []string, metadatas []map[string]string, embedder driven.EmbeddingService) error {
	if len(texts) == 0 {
		return nil
	}
	if metadatas != nil && len(metadatas) != len(texts) {
		return fmt.Errorf("%w: %d texts with %d metadata entries", domain.ErrInvalidInput, len(texts), len(metadatas))
	}
	for i, text := range texts {
		if text == "" {
			return fmt.Errorf("%w: empty text at index %d", domain.ErrInvalidInput, i)
		}
	}

	vectors, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed %d texts: %w", len(texts), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	for i, text := range texts {
		metadata := map[string]string{}
		if metadatas != nil && metadatas[i] != nil {
			metadata = metadatas[i]
		}
		records = append(records, record{
			ID:        fmt.Sprintf("doc-%d", len(records)+1),
			Text:      text,
			Metadata:  metadata,
			Embedding: vectors[i],
		})
	}

	if err := s.write(records); err != nil {
		return fmt.Errorf("write fallback store %s: %w", s.path, err)
	}
	logger.Info("Wrote %d documents to fallback store: %s", len(texts), s.path)
	return nil
}

// Search returns the k records with the largest token-set overlap with the
// query, ties broken by stored order. An absent file yields an empty
// result, never an error.
func (s *JSONStore) Search(_ context.Context, query string, k int) ([]domain.DocumentRecord, error) {
	s.mu.Lock()
	records := s.load()
	s.mu.Unlock()

	if len(records) == 0 {
		return []domain.DocumentRecord{}, nil
	}

	queryTokens := tokenize(query)
	type scored struct {
		rec   record
		score int
	}
	ranked := make([]scored, len(records))
	for i, rec := range records {
		ranked[i] = scored{rec: rec, score: overlap(queryTokens, tokenize(rec.Text))}
	}

	// Stable: equal scores keep insertion order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	results := make([]domain.DocumentRecord, 0, k)
	for _, entry := range ranked[:k] {
		metadata := entry.rec.Metadata
		if metadata == nil {
			metadata = map[string]string{}
		}
		results = append(results, domain.DocumentRecord{
			ID:        entry.rec.ID,
			Text:      entry.rec.Text,
			Metadata:  metadata,
			Embedding: entry.rec.Embedding,
		})
	}
	return results, nil
}

// Count returns the number of stored records.
func (s *JSONStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.load()), nil
}

// load reads the whole store. An absent or unparseable file is treated as
// empty; corruption is accepted data loss, logged and never fatal.
func (s *JSONStore) load() []record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("Fallback store %s is corrupt, treating as empty: %v", s.path, err)
		return nil
	}
	return records
}

// write rewrites the whole store atomically (temp file + rename).
func (s *JSONStore) write(records []record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".fallback-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// tokenize splits text into a lowercase whitespace-delimited token set.
func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		tokens[field] = struct{}{}
	}
	return tokens
}

// overlap counts tokens present in both sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for token := range a {
		if _, ok := b[token]; ok {
			count++
		}
	}
	return count
}
