package domain

// StoreStatus describes which retrieval paths are currently live.
// Degraded paths (stub embeddings, lexical fallback search) are reported
// here rather than hidden.
type StoreStatus struct {
	// Tier is the embedding tier resolution selected.
	Tier EmbeddingTier

	// EmbeddingModel is the model name reported by the active embedder.
	EmbeddingModel string

	// VectorAvailable is true when the persistent vector store opened.
	VectorAvailable bool

	// VectorDir is the vector store persist directory.
	VectorDir string

	// FallbackRecords is the number of records in the fallback store.
	FallbackRecords int

	// FallbackPath is the fallback store file location.
	FallbackPath string
}
