package domain

// DocumentRecord is the canonical stored representation of an ingested text.
// Both the vector store and the fallback store persist this shape, so
// retrieval results look identical regardless of which path served them.
type DocumentRecord struct {
	// ID is the unique identifier within one store instance.
	// The fallback store assigns sequential "doc-<n>" ids; the vector
	// store uses opaque ids.
	ID string

	// Text is the raw document text. Always non-empty for admitted records.
	Text string

	// Metadata contains arbitrary provenance key-value pairs.
	// Commonly carries a "source" key (URL or "filename - section").
	Metadata map[string]string

	// Embedding is the vector representation of Text.
	// May be nil on retrieval results hydrated without vectors.
	Embedding []float32
}

// Answer is the result of a question-answering run over retrieved context.
type Answer struct {
	// Result is the answer text. On answer-provider failure this is a
	// "[LLM_ERROR]"-tagged string rather than an error.
	Result string

	// Sources are the documents the answer was grounded on.
	Sources []DocumentRecord

	// Degraded is true when the lexical fallback served retrieval.
	Degraded bool
}
