// Package chunk provides fixed-size text splitting for ingestion.
package chunk

// DefaultSize is the default number of characters per chunk.
const DefaultSize = 1000

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 200

// Splitter splits long texts into fixed-size, overlapping chunks so each
// piece stays within what embedding models handle well.
type Splitter struct {
	size    int
	overlap int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithSize sets the chunk size in characters.
func WithSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.size = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		size:    DefaultSize,
		overlap: DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.size {
		s.overlap = s.size / 4
	}

	return s
}

// Split cuts text into chunks of at most the configured size, each
// overlapping the previous one. Text at or under the chunk size is
// returned as a single chunk; empty text yields no chunks.
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	total := len(runes)
	if total <= s.size {
		return []string{text}
	}

	estimated := (total / (s.size - s.overlap)) + 1
	chunks := make([]string, 0, estimated)

	start := 0
	for start < total {
		end := start + s.size
		if end > total {
			end = total
		}
		chunks = append(chunks, string(runes[start:end]))

		start += s.size - s.overlap

		// Avoid infinite loop for edge cases
		if s.size <= s.overlap {
			break
		}
	}

	return chunks
}
