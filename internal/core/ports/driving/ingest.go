package driving

import "context"

// IngestService admits documents into the store.
type IngestService interface {
	// Ingest vectorizes and persists texts with parallel metadata.
	// It degrades to the fallback store on vector-store failure and
	// returns an error only when both persistence paths are exhausted.
	Ingest(ctx context.Context, texts []string, metadatas []map[string]string) error

	// IngestSource fetches text from an external source (e.g., a URL) and
	// ingests it with a "source" metadata entry. Empty extractions are
	// rejected with domain.ErrInvalidInput.
	IngestSource(ctx context.Context, source string) error
}
