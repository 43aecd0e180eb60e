// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - EmbeddingService: Generates vector embeddings. The tier resolver
//     always produces one, degrading to a deterministic stub offline.
//   - FallbackStore: Append-only JSON document store with lexical search.
//     Always available as the degraded persistence path.
//   - ConfigStore: Application configuration.
//
// # Optional Interfaces
//
// These can be absent - the application degrades gracefully:
//
//   - VectorStore: Persistent vector index (sqvect). When it cannot be
//     opened or fails, ingestion and retrieval route to the FallbackStore.
//   - AnswerService: Language model answer composition. Without it, the
//     deterministic stub answerer is used.
//   - TextProducer: Fetches raw text from an external source (web page).
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
