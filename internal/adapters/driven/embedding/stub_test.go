package embedding

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubEmbedder_Deterministic(t *testing.T) {
	stub := NewStubEmbedder()
	ctx := context.Background()

	first, err := stub.Embed(ctx, "hello world")
	require.NoError(t, err)
	second, err := stub.Embed(ctx, "hello world")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same text must produce identical vectors")
	assert.Len(t, first, StubDimensions)
}

func TestStubEmbedder_DistinctTexts(t *testing.T) {
	stub := NewStubEmbedder()
	ctx := context.Background()

	a, err := stub.Embed(ctx, "alpha")
	require.NoError(t, err)
	b, err := stub.Embed(ctx, "bravo")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestStubEmbedder_ValueRange(t *testing.T) {
	stub := NewStubEmbedder()

	vec, err := stub.Embed(context.Background(), "The quick brown fox jumps over the lazy dog")
	require.NoError(t, err)

	for i, v := range vec {
		assert.GreaterOrEqual(t, v, float32(0), "component %d below range", i)
		assert.Less(t, v, float32(1), "component %d above range", i)
	}
}

func TestStubEmbedder_WindowTruncation(t *testing.T) {
	stub := NewStubEmbedder()
	ctx := context.Background()

	base := strings.Repeat("x", stubWindow)
	extended := base + "completely different tail content"

	a, err := stub.Embed(ctx, base)
	require.NoError(t, err)
	b, err := stub.Embed(ctx, extended)
	require.NoError(t, err)

	assert.Equal(t, a, b, "text beyond the window must not affect the vector")
}

func TestStubEmbedder_ShortTextPadded(t *testing.T) {
	stub := NewStubEmbedder()

	vec, err := stub.Embed(context.Background(), "ab")
	require.NoError(t, err)

	require.Len(t, vec, StubDimensions)
	// Positions past the text carry the NUL padding value.
	for i := 2; i < StubDimensions; i++ {
		assert.Equal(t, float32(0), vec[i])
	}
}

func TestStubEmbedder_EmbedBatch(t *testing.T) {
	stub := NewStubEmbedder()
	ctx := context.Background()

	batch, err := stub.EmbedBatch(ctx, []string{"one", "two", "three"})
	require.NoError(t, err)
	require.Len(t, batch, 3)

	single, err := stub.Embed(ctx, "two")
	require.NoError(t, err)
	assert.Equal(t, single, batch[1])
}

func TestStubEmbedder_Metadata(t *testing.T) {
	stub := NewStubEmbedder()

	assert.Equal(t, StubDimensions, stub.Dimensions())
	assert.NotEmpty(t, stub.ModelName())
	assert.NoError(t, stub.Ping(context.Background()))
	assert.NoError(t, stub.Close())
}
