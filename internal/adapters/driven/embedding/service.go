package embedding

import (
	"context"
	"fmt"

	geminiembed "github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding/gemini"
	ollamaembed "github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding/openai"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
)

// Ensure service implements the interface.
var _ driven.EmbeddingService = (*service)(nil)

// service binds call options to one of the factory's cached clients.
// Exactly one backend pointer is set, matching opts.Provider. The view
// itself is cheap: creating one per call carries no connection cost.
type service struct {
	opts domain.EmbeddingOptions

	local  *ollamaembed.EmbeddingService
	gemini *geminiembed.EmbeddingService
	openai *openaiembed.EmbeddingService
}

// Embed generates a vector for text sized to the configured dimensions.
// Text beyond the character limit is truncated before the provider call,
// and the provider's native vector is padded or cut to fit afterwards.
func (s *service) Embed(ctx context.Context, text string) ([]float32, error) {
	text = Truncate(text, s.opts.MaxChars)

	var (
		vec []float32
		err error
	)
	switch {
	case s.local != nil:
		vec, err = s.local.Embed(ctx, text)
	case s.gemini != nil:
		vec, err = s.gemini.Embed(ctx, text)
	case s.openai != nil:
		// OpenAI sizes vectors server side, picking the model by the
		// requested dimensions. The pad below is then a no-op.
		vec, err = s.openai.EmbedWithDimensions(ctx, text, s.opts.Dimensions)
	default:
		return nil, fmt.Errorf("%w: no embedding backend configured", domain.ErrEmbeddingUnavailable)
	}
	if err != nil {
		return nil, err
	}

	return Pad(vec, s.opts.Dimensions), nil
}

// Dimensions returns the configured vector size, which is what Embed
// produces after padding. It can differ from the backend's native size.
func (s *service) Dimensions() int {
	return s.opts.Dimensions
}

// ModelName reports the backend model used for this service's calls.
func (s *service) ModelName() string {
	switch {
	case s.local != nil:
		return s.local.ModelName()
	case s.gemini != nil:
		return s.gemini.ModelName()
	case s.openai != nil:
		return openaiembed.ModelForDimensions(s.opts.Dimensions)
	}
	return ""
}

// Ping checks that the backend is reachable.
func (s *service) Ping(ctx context.Context) error {
	switch {
	case s.local != nil:
		return s.local.Ping(ctx)
	case s.gemini != nil:
		return s.gemini.Ping(ctx)
	case s.openai != nil:
		return s.openai.Ping(ctx)
	}
	return fmt.Errorf("%w: no embedding backend configured", domain.ErrEmbeddingUnavailable)
}

// Close is a no-op. Backend clients belong to the factory and stay alive
// for other views; call Factory.Close to release them.
func (s *service) Close() error {
	return nil
}
