package domain

// Default configuration values.
const (
	// DefaultEmbeddingModel is the local embedding model used by tiers 2-3
	// when EMBEDDING_MODEL is not set.
	DefaultEmbeddingModel = "all-minilm"

	// DefaultAnswerModel is the Groq chat model used for answer composition.
	DefaultAnswerModel = "llama-3.1-8b-instant"

	// DefaultCollection is the fixed collection name inside the vector store.
	DefaultCollection = "rag_docs"

	// DefaultRetrieveK is the number of documents returned by retrieval
	// when the caller does not specify one.
	DefaultRetrieveK = 3
)

// EmbeddingTier identifies one candidate embedding provider in the
// resolution priority order.
type EmbeddingTier string

// Embedding tiers, in resolution priority order.
const (
	// TierGroq is the remote keyed embedding service. Usable only when an
	// API key is configured.
	TierGroq EmbeddingTier = "groq"

	// TierOllama is the local embedding model server.
	TierOllama EmbeddingTier = "ollama"

	// TierLMStudio is the second local backend (OpenAI-compatible server).
	TierLMStudio EmbeddingTier = "lmstudio"

	// TierStub is the deterministic offline embedder. Never fails.
	TierStub EmbeddingTier = "stub"
)

// String returns the string representation.
func (t EmbeddingTier) String() string {
	return string(t)
}

// Degraded returns true if the tier produces stub embeddings rather than
// real ones. Operators should be able to tell the two apart.
func (t EmbeddingTier) Degraded() bool {
	return t == TierStub
}

// Description returns a human-readable description of the tier.
func (t EmbeddingTier) Description() string {
	switch t {
	case TierGroq:
		return "Groq (remote, keyed)"
	case TierOllama:
		return "Ollama (local model server)"
	case TierLMStudio:
		return "LM Studio (local, OpenAI-compatible)"
	case TierStub:
		return "Deterministic stub (offline, degraded quality)"
	default:
		return "unknown"
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Model is the local embedding model name for the Ollama and LM Studio
	// tiers. Overridden by the EMBEDDING_MODEL environment variable.
	Model string

	// GroqAPIKey enables the remote tier only if present and non-empty.
	// Overridden by the GROQ_API_KEY environment variable.
	GroqAPIKey string

	// OllamaBaseURL is the local model server endpoint.
	OllamaBaseURL string

	// LMStudioBaseURL is the second local backend endpoint.
	LMStudioBaseURL string
}

// AnswerSettings holds answer provider configuration.
type AnswerSettings struct {
	// Model is the chat model name. Overridden by GROQ_MODEL.
	Model string

	// GroqAPIKey enables the remote answerer; empty means the stub answerer.
	GroqAPIKey string
}

// StoreSettings holds persistence configuration.
type StoreSettings struct {
	// VectorDir is the vector store persist directory.
	// Overridden by the ALCOVE_VECTOR_DIR environment variable.
	VectorDir string

	// FallbackPath is the fallback JSON store file location.
	FallbackPath string

	// Collection is the collection name inside the vector store.
	Collection string
}

// Settings is the complete application configuration.
type Settings struct {
	Embedding EmbeddingSettings
	Answer    AnswerSettings
	Store     StoreSettings
}

// DefaultSettings returns settings with all defaults applied.
// Path fields are left empty for the config store to resolve against the
// data directory.
func DefaultSettings() Settings {
	return Settings{
		Embedding: EmbeddingSettings{
			Model: DefaultEmbeddingModel,
		},
		Answer: AnswerSettings{
			Model: DefaultAnswerModel,
		},
		Store: StoreSettings{
			Collection: DefaultCollection,
		},
	}
}
