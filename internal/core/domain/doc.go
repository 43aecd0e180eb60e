// Package domain defines the core business entities for Alcove.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentRecord: A retrievable unit of ingested text
//   - Answer: The result of answering a question over retrieved context
//   - Settings: Embedding, answer and store configuration
//   - StoreStatus: A snapshot of which retrieval path is active
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
