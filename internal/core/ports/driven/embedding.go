package driven

import (
	"context"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// EmbeddingService generates vector embeddings from text.
//
// Each instance is bound to one provider and one set of call options; the
// underlying client or model handle is shared process-wide through
// EmbeddingFactory, so constructing a service is cheap after the first call
// for a given provider.
//
// Implementations may include:
//   - Local models served by Ollama (all-minilm, nomic-embed-text)
//   - Google Gemini (gemini-embedding-001)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text. The result
	// length always equals the dimensions the service was resolved with.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the target vector size the service produces.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// EmbeddingFactory resolves embedding options to a ready service.
//
// The factory owns the per-process provider cache: one client/model handle
// per provider name, lazily constructed on first use and guarded against
// duplicate initialisation. Only the handle is cached; the options carried
// by each returned service are the caller's, so two services resolved for
// the same provider with different dimensions share a client but embed to
// different lengths.
type EmbeddingFactory interface {
	// Create returns an EmbeddingService for the given options.
	// Returns domain.ErrUnknownProvider for unrecognised provider names
	// and domain.ErrMissingAPIKey when a remote provider has no key in
	// the options or its environment variable. Both checks happen before
	// any network activity.
	Create(opts domain.EmbeddingOptions) (EmbeddingService, error)
}
