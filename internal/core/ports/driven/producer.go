package driven

import "context"

// TextProducer fetches raw text from an external source for ingestion.
// The returned text is already cleaned but may be empty when extraction
// found nothing usable; callers filter empty texts before admission.
type TextProducer interface {
	// Produce returns the text content for a source (e.g., a URL).
	Produce(ctx context.Context, source string) (string, error)
}
