package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcove-ai/alcove/internal/core/domain"
)

func TestRetrieve_VectorPath(t *testing.T) {
	store := &fakeVectorStore{searchResults: []domain.DocumentRecord{
		{ID: "1", Text: "match", Metadata: map[string]string{"source": "a"}},
	}}
	provider := &fakeProvider{stores: []*fakeVectorStore{store}}
	fb := &fakeFallback{}
	svc := NewRetrievalService(newTestManager(provider), fb, nil)

	results, err := svc.Retrieve(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "match", results[0].Text)
	assert.Zero(t, fb.searches, "healthy vector path must not reach the fallback")
	assert.Equal(t, 1, store.closes)
}

func TestRetrieve_EmptyVectorResultIsValid(t *testing.T) {
	store := &fakeVectorStore{searchResults: []domain.DocumentRecord{}}
	provider := &fakeProvider{stores: []*fakeVectorStore{store}}
	fb := &fakeFallback{searchResults: []domain.DocumentRecord{{ID: "doc-1", Text: "noise"}}}
	svc := NewRetrievalService(newTestManager(provider), fb, nil)

	results, err := svc.Retrieve(context.Background(), "query", 3)
	require.NoError(t, err)
	assert.Empty(t, results, "an empty result from a healthy store stands")
	assert.Zero(t, fb.searches)
}

func TestRetrieve_DegradesOnSearchFailure(t *testing.T) {
	store := &fakeVectorStore{searchErr: errors.New("index closed")}
	provider := &fakeProvider{stores: []*fakeVectorStore{store}}
	fb := &fakeFallback{searchResults: []domain.DocumentRecord{{ID: "doc-1", Text: "lexical hit"}}}
	svc := NewRetrievalService(newTestManager(provider), fb, nil)

	results, err := svc.Retrieve(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "lexical hit", results[0].Text)
}

func TestRetrieve_DegradesWhenNoStore(t *testing.T) {
	fb := &fakeFallback{searchResults: []domain.DocumentRecord{{ID: "doc-1", Text: "lexical hit"}}}
	svc := NewRetrievalService(newTestManager(nil), fb, nil)

	results, err := svc.Retrieve(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, fb.searches)
}

func TestRetrieve_DefaultK(t *testing.T) {
	store := &fakeVectorStore{}
	provider := &fakeProvider{stores: []*fakeVectorStore{store}}
	svc := NewRetrievalService(newTestManager(provider), &fakeFallback{}, nil)

	_, err := svc.Retrieve(context.Background(), "query", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRetrieveK, store.lastK)
}

func TestRetrieve_MetadataNeverNil(t *testing.T) {
	store := &fakeVectorStore{searchResults: []domain.DocumentRecord{
		{ID: "1", Text: "no metadata"},
	}}
	provider := &fakeProvider{stores: []*fakeVectorStore{store}}
	svc := NewRetrievalService(newTestManager(provider), &fakeFallback{}, nil)

	results, err := svc.Retrieve(context.Background(), "query", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotNil(t, results[0].Metadata, "results are uniform regardless of path")
}

func TestAsk_Success(t *testing.T) {
	store := &fakeVectorStore{searchResults: []domain.DocumentRecord{
		{ID: "1", Text: "relevant context", Metadata: map[string]string{}},
	}}
	provider := &fakeProvider{stores: []*fakeVectorStore{store}}
	answerer := &fakeAnswerer{result: "the answer"}
	svc := NewRetrievalService(newTestManager(provider), &fakeFallback{}, answerer)

	answer, err := svc.Ask(context.Background(), "what is relevant?", 3)
	require.NoError(t, err)

	assert.Equal(t, "the answer", answer.Result)
	assert.False(t, answer.Degraded)
	require.Len(t, answer.Sources, 1)

	require.Len(t, answerer.prompts, 1)
	assert.Contains(t, answerer.prompts[0], "relevant context")
	assert.Contains(t, answerer.prompts[0], "what is relevant?")
}

func TestAsk_ContainsAnswerFailure(t *testing.T) {
	answerer := &fakeAnswerer{err: errors.New("rate limited")}
	svc := NewRetrievalService(newTestManager(nil), &fakeFallback{}, answerer)

	answer, err := svc.Ask(context.Background(), "question", 3)
	require.NoError(t, err, "answer failures are contained, not raised")
	assert.True(t, strings.HasPrefix(answer.Result, "[LLM_ERROR] "))
	assert.Contains(t, answer.Result, "rate limited")
}

func TestAsk_NoAnswererConfigured(t *testing.T) {
	svc := NewRetrievalService(newTestManager(nil), &fakeFallback{}, nil)

	answer, err := svc.Ask(context.Background(), "question", 3)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(answer.Result, "[LLM_ERROR]"))
}

func TestAsk_DegradedFlag(t *testing.T) {
	fb := &fakeFallback{searchResults: []domain.DocumentRecord{{ID: "doc-1", Text: "hit"}}}
	answerer := &fakeAnswerer{result: "answer"}
	svc := NewRetrievalService(newTestManager(nil), fb, answerer)

	answer, err := svc.Ask(context.Background(), "question", 3)
	require.NoError(t, err)
	assert.True(t, answer.Degraded, "fallback-served retrieval must be flagged")
}

func TestStatus_VectorAvailable(t *testing.T) {
	provider := &fakeProvider{dir: "/data/vectors"}
	fb := &fakeFallback{}
	require.NoError(t, fb.Append(context.Background(), []string{"a", "b"}, nil, nil))
	svc := NewRetrievalService(newTestManager(provider), fb, nil)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.TierStub, status.Tier)
	assert.Equal(t, "fake-model", status.EmbeddingModel)
	assert.True(t, status.VectorAvailable)
	assert.Equal(t, "/data/vectors", status.VectorDir)
	assert.Equal(t, 2, status.FallbackRecords)
	assert.Equal(t, fb.Path(), status.FallbackPath)
}

func TestStatus_NoVectorStore(t *testing.T) {
	svc := NewRetrievalService(newTestManager(nil), &fakeFallback{}, nil)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.VectorAvailable)
	assert.Empty(t, status.VectorDir)
}
