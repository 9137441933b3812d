package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Embedding Errors.

	// ErrUnknownProvider indicates an unrecognised embedding provider name.
	ErrUnknownProvider = errors.New("unknown embedding provider")

	// ErrMissingAPIKey indicates a remote provider was selected but no API
	// key was supplied in the options or the provider's environment variable.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// Semantic search and indexing are disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// Storage Errors.

	// ErrDuplicateSlug indicates two files derived the same slug during an
	// indexing run. The colliding document is counted as failed, not merged.
	ErrDuplicateSlug = errors.New("duplicate slug")
)
