package domain

import (
	"errors"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProviderUnavailable indicates an embedding provider tier cannot be
	// constructed (missing credential, unreachable service). Recovered by
	// falling to the next tier; never surfaced to callers.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")

	// ErrDimensionMismatch indicates a vector's length differs from the
	// dimension the index was created with. Recovered by destructive store
	// reinitialisation and a single retry.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrStoreUnavailable indicates the vector store cannot service a
	// request at all. Recovered by routing to the fallback store.
	ErrStoreUnavailable = errors.New("vector store unavailable")

	// ErrCorruptFallback indicates the fallback JSON file exists but fails
	// to parse. Recovered by treating the store as empty.
	ErrCorruptFallback = errors.New("corrupt fallback store file")

	// ErrAnswerFailure indicates the answer provider raised or errored.
	// Recovered by returning a tagged error string as the answer.
	ErrAnswerFailure = errors.New("answer provider failure")
)

// dimensionPatterns are the legacy textual signals for dimension
// incompatibility. The sqvect integration returns typed errors which are
// matched via errors.Is first; substring matching remains for errors that
// bubble out of the index library untyped.
var dimensionPatterns = []string{"dimension", "embedding", "mismatch"}

// IsDimensionMismatch reports whether err indicates a vector-dimension
// incompatibility that warrants a destructive store reinitialisation.
func IsDimensionMismatch(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDimensionMismatch) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range dimensionPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
