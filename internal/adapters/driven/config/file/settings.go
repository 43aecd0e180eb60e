package file

import (
	"os"
	"path/filepath"

	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
)

// Environment variables recognised as overrides. API keys are only ever
// read from the environment, never persisted to the config file.
const (
	// EnvEmbeddingModel selects the local embedding model for tiers 2-3.
	EnvEmbeddingModel = "EMBEDDING_MODEL"

	// EnvGroqAPIKey enables the remote tier only if present and non-empty.
	EnvGroqAPIKey = "GROQ_API_KEY"

	// EnvGroqModel selects the chat model for answer composition.
	EnvGroqModel = "GROQ_MODEL"

	// EnvVectorDir relocates the vector store's on-disk location.
	EnvVectorDir = "ALCOVE_VECTOR_DIR"
)

// Config file keys.
const (
	keyEmbeddingModel  = "embedding.model"
	keyOllamaBaseURL   = "embedding.ollama_base_url"
	keyLMStudioBaseURL = "embedding.lmstudio_base_url"
	keyAnswerModel     = "answer.model"
	keyVectorDir       = "store.vector_dir"
	keyFallbackPath    = "store.fallback_path"
	keyCollection      = "store.collection"
)

// LoadSettings assembles application settings from defaults, the config
// store, and environment overrides - in that order of precedence (later
// wins). Store paths default to the data directory next to the config file.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()
	dataDir := filepath.Join(filepath.Dir(store.Path()), "data")

	settings.Store.VectorDir = filepath.Join(dataDir, "vectors")
	settings.Store.FallbackPath = filepath.Join(dataDir, "fallback_store.json")

	// Config file values.
	if v := store.GetString(keyEmbeddingModel); v != "" {
		settings.Embedding.Model = v
	}
	if v := store.GetString(keyOllamaBaseURL); v != "" {
		settings.Embedding.OllamaBaseURL = v
	}
	if v := store.GetString(keyLMStudioBaseURL); v != "" {
		settings.Embedding.LMStudioBaseURL = v
	}
	if v := store.GetString(keyAnswerModel); v != "" {
		settings.Answer.Model = v
	}
	if v := store.GetString(keyVectorDir); v != "" {
		settings.Store.VectorDir = v
	}
	if v := store.GetString(keyFallbackPath); v != "" {
		settings.Store.FallbackPath = v
	}
	if v := store.GetString(keyCollection); v != "" {
		settings.Store.Collection = v
	}

	// Environment overrides.
	if v := os.Getenv(EnvEmbeddingModel); v != "" {
		settings.Embedding.Model = v
	}
	if v := os.Getenv(EnvGroqAPIKey); v != "" {
		settings.Embedding.GroqAPIKey = v
		settings.Answer.GroqAPIKey = v
	}
	if v := os.Getenv(EnvGroqModel); v != "" {
		settings.Answer.Model = v
	}
	if v := os.Getenv(EnvVectorDir); v != "" {
		settings.Store.VectorDir = v
	}

	return settings
}
