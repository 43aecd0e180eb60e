package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncEmbedder_Embed(t *testing.T) {
	var gotTexts []string
	fn := func(_ context.Context, texts []string) ([][]float32, error) {
		gotTexts = texts
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1, 2, 3}
		}
		return out, nil
	}

	embedder := NewFuncEmbedder(fn, 3, "test-model")

	vec, err := embedder.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, vec)
	assert.Equal(t, []string{"hello"}, gotTexts, "single embed wraps into a one-element batch")
}

func TestFuncEmbedder_EmbedBatch(t *testing.T) {
	fn := func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{float32(i)}
		}
		return out, nil
	}

	embedder := NewFuncEmbedder(fn, 1, "test-model")

	batch, err := embedder.EmbedBatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, []float32{1}, batch[1])
}

func TestFuncEmbedder_PropagatesError(t *testing.T) {
	wantErr := errors.New("provider down")
	fn := func(_ context.Context, _ []string) ([][]float32, error) {
		return nil, wantErr
	}

	embedder := NewFuncEmbedder(fn, 4, "test-model")

	_, err := embedder.Embed(context.Background(), "x")
	assert.ErrorIs(t, err, wantErr)

	_, err = embedder.EmbedBatch(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, wantErr)
}

func TestFuncEmbedder_EmptyResult(t *testing.T) {
	fn := func(_ context.Context, _ []string) ([][]float32, error) {
		return nil, nil
	}

	embedder := NewFuncEmbedder(fn, 4, "test-model")

	_, err := embedder.Embed(context.Background(), "x")
	assert.Error(t, err)
}

func TestFuncEmbedder_Metadata(t *testing.T) {
	embedder := NewFuncEmbedder(nil, 768, "wrapped")

	assert.Equal(t, 768, embedder.Dimensions())
	assert.Equal(t, "wrapped", embedder.ModelName())
	assert.NoError(t, embedder.Ping(context.Background()))
	assert.NoError(t, embedder.Close())
}
