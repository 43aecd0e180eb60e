package fallback

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcove-ai/alcove/internal/adapters/driven/embedding"
	"github.com/alcove-ai/alcove/internal/core/domain"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "fallback_store.json"))
}

func TestJSONStore_AppendAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	embedder := embedding.NewStubEmbedder()

	err := store.Append(ctx, []string{"first", "second"}, nil, embedder)
	require.NoError(t, err)
	err = store.Append(ctx, []string{"third"}, nil, embedder)
	require.NoError(t, err)

	results, err := store.Search(ctx, "first second third", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	ids := map[string]bool{}
	for _, r := range results {
		ids[r.ID] = true
	}
	assert.True(t, ids["doc-1"])
	assert.True(t, ids["doc-2"])
	assert.True(t, ids["doc-3"])
}

func TestJSONStore_AppendRejectsEmptyText(t *testing.T) {
	store := newTestStore(t)

	err := store.Append(context.Background(), []string{"ok", ""}, nil, embedding.NewStubEmbedder())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJSONStore_AppendRejectsMetadataLengthMismatch(t *testing.T) {
	store := newTestStore(t)

	err := store.Append(context.Background(), []string{"a", "b"},
		[]map[string]string{{"source": "x"}}, embedding.NewStubEmbedder())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJSONStore_AppendEmptyBatchIsNoop(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(context.Background(), nil, nil, embedding.NewStubEmbedder()))

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "no file should be created for an empty batch")
}

func TestJSONStore_FileIsPrettyPrintedArray(t *testing.T) {
	store := newTestStore(t)

	err := store.Append(context.Background(), []string{"hello"},
		[]map[string]string{{"source": "unit"}}, embedding.NewStubEmbedder())
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ", "file should be indented")

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "doc-1", records[0]["id"])
	assert.Equal(t, "hello", records[0]["text"])
}

func TestJSONStore_SearchRanksByTokenOverlap(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Append(ctx, []string{"the cat sat on the mat", "a dog ran in the park"}, nil, embedding.NewStubEmbedder())
	require.NoError(t, err)

	results, err := store.Search(ctx, "cat sat", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "the cat sat on the mat", results[0].Text)
}

func TestJSONStore_SearchTiesKeepStoredOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Append(ctx, []string{"apple pie", "apple tart"}, nil, embedding.NewStubEmbedder())
	require.NoError(t, err)

	results, err := store.Search(ctx, "apple", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "doc-1", results[0].ID)
	assert.Equal(t, "doc-2", results[1].ID)
}

func TestJSONStore_SearchIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Append(ctx, []string{"Mixed CASE Text"}, nil, embedding.NewStubEmbedder())
	require.NoError(t, err)

	results, err := store.Search(ctx, "mixed case", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mixed CASE Text", results[0].Text)
}

func TestJSONStore_SearchEmptyStore(t *testing.T) {
	store := newTestStore(t)

	results, err := store.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestJSONStore_SearchClampsK(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Append(ctx, []string{"only one"}, nil, embedding.NewStubEmbedder())
	require.NoError(t, err)

	results, err := store.Search(ctx, "one", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestJSONStore_SearchResultsHaveMetadata(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Append(ctx, []string{"with meta", "without meta"},
		[]map[string]string{{"source": "a"}, nil}, embedding.NewStubEmbedder())
	require.NoError(t, err)

	results, err := store.Search(ctx, "meta", 2)
	require.NoError(t, err)
	for _, r := range results {
		assert.NotNil(t, r.Metadata, "metadata must never be nil on results")
	}
}

func TestJSONStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0700))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Appending over a corrupt file starts the id sequence fresh.
	err = store.Append(ctx, []string{"recovered"}, nil, embedding.NewStubEmbedder())
	require.NoError(t, err)

	results, err := store.Search(ctx, "recovered", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "doc-1", results[0].ID)
}

func TestJSONStore_Count(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, store.Append(ctx, []string{"a", "b"}, nil, embedding.NewStubEmbedder()))

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
