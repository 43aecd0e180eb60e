package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// The tier resolver always produces an implementation: remote providers
// degrade to local ones and finally to a deterministic offline stub, so a
// nil EmbeddingService never reaches core services.
//
// Note: This is separate from VectorStore which stores and searches vectors.
// EmbeddingService generates vectors; VectorStore stores them.
//
// Implementations include:
//   - Groq (remote, keyed)
//   - Ollama (local model server)
//   - LM Studio (local, OpenAI-compatible)
//   - Deterministic stub (offline)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// Equivalent to EmbedBatch with a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts. The result has
	// one vector per input text, all of identical dimension.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 32, 384, 1536).
	// This determines the dimension of the vector store it is bound to.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used during tier resolution to demote dead providers.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
