package services

import (
	"context"

	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
)

// fakeEmbedder is a minimal in-memory EmbeddingService.
type fakeEmbedder struct {
	dims int
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{dims: 4}
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return make([]float32, f.dims), nil
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, f.dims)
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int { return f.dims }

func (f *fakeEmbedder) ModelName() string { return "fake-model" }

func (f *fakeEmbedder) Ping(_ context.Context) error { return nil }

func (f *fakeEmbedder) Close() error { return nil }

// fakeResolver returns a counting EmbedderResolver bound to one embedder.
func fakeResolver(embedder driven.EmbeddingService, calls *int) EmbedderResolver {
	return func(_ context.Context, _ domain.EmbeddingSettings) (driven.EmbeddingService, domain.EmbeddingTier) {
		if calls != nil {
			*calls++
		}
		return embedder, domain.TierStub
	}
}

// fakeVectorStore is a scriptable VectorStore: errors are popped per call.
type fakeVectorStore struct {
	addErrs       []error
	searchResults []domain.DocumentRecord
	searchErr     error
	flushErr      error

	added    [][]string
	lastK    int
	searches int
	flushes  int
	closes   int
}

func (f *fakeVectorStore) AddTexts(_ context.Context, texts []string, _ []map[string]string) error {
	f.added = append(f.added, texts)
	if len(f.addErrs) > 0 {
		err := f.addErrs[0]
		f.addErrs = f.addErrs[1:]
		return err
	}
	return nil
}

func (f *fakeVectorStore) Search(_ context.Context, _ string, k int) ([]domain.DocumentRecord, error) {
	f.searches++
	f.lastK = k
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func (f *fakeVectorStore) Flush(_ context.Context) error {
	f.flushes++
	return f.flushErr
}

func (f *fakeVectorStore) Close() error {
	f.closes++
	return nil
}

// fakeProvider is a scriptable VectorStoreProvider: open errors and store
// handles are popped per call.
type fakeProvider struct {
	openErrs []error
	stores   []*fakeVectorStore
	wipeErr  error

	opens int
	wipes int
	dir   string
}

func (f *fakeProvider) Open(_ context.Context, _ driven.EmbeddingService) (driven.VectorStore, error) {
	f.opens++
	if len(f.openErrs) > 0 {
		err := f.openErrs[0]
		f.openErrs = f.openErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if len(f.stores) > 0 {
		store := f.stores[0]
		f.stores = f.stores[1:]
		return store, nil
	}
	return &fakeVectorStore{}, nil
}

func (f *fakeProvider) Wipe() error {
	f.wipes++
	return f.wipeErr
}

func (f *fakeProvider) Dir() string {
	if f.dir == "" {
		return "/tmp/vectors"
	}
	return f.dir
}

type appendCall struct {
	texts     []string
	metadatas []map[string]string
}

// fakeFallback is an in-memory FallbackStore.
type fakeFallback struct {
	appendErr     error
	searchResults []domain.DocumentRecord
	searchErr     error

	appends  []appendCall
	searches int
}

func (f *fakeFallback) Append(_ context.Context, texts []string, metadatas []map[string]string, _ driven.EmbeddingService) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends = append(f.appends, appendCall{texts: texts, metadatas: metadatas})
	return nil
}

func (f *fakeFallback) Search(_ context.Context, _ string, _ int) ([]domain.DocumentRecord, error) {
	f.searches++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func (f *fakeFallback) Count(_ context.Context) (int, error) {
	count := 0
	for _, call := range f.appends {
		count += len(call.texts)
	}
	return count, nil
}

func (f *fakeFallback) Path() string {
	return "/tmp/fallback_store.json"
}

// fakeAnswerer is a scriptable AnswerService.
type fakeAnswerer struct {
	result string
	err    error

	prompts []string
}

func (f *fakeAnswerer) Answer(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func (f *fakeAnswerer) ModelName() string { return "fake-answerer" }

func (f *fakeAnswerer) Close() error { return nil }

// fakeProducer is a scriptable TextProducer.
type fakeProducer struct {
	text string
	err  error
}

func (f *fakeProducer) Produce(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}
