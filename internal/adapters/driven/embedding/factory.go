// Package embedding resolves embedding options to provider-backed
// services. The factory owns the per-process provider cache: one client
// per provider, lazily constructed on first use and shared by every
// subsequent call regardless of the call's own dimensions or text limits.
package embedding

import (
	"context"
	"fmt"
	"os"
	"sync"

	geminiembed "github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding/gemini"
	ollamaembed "github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding/openai"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
	"github.com/veldt-labs/canopy-cli/internal/logger"
)

// Ensure Factory implements the interface.
var _ driven.EmbeddingFactory = (*Factory)(nil)

// Config holds the per-provider endpoints and model names. Zero values
// fall back to each backend's defaults.
type Config struct {
	// OllamaURL is the local Ollama endpoint.
	OllamaURL string

	// OllamaModel is the local embedding model name.
	OllamaModel string

	// GeminiURL overrides the Gemini API endpoint.
	GeminiURL string

	// GeminiModel is the Gemini embedding model name.
	GeminiModel string

	// OpenAIURL overrides the OpenAI API endpoint.
	OpenAIURL string
}

// Factory creates embedding services and caches provider clients.
//
// The first call for a provider constructs its client under the lock, so
// concurrent first calls cannot double-initialise. Later calls reuse the
// cached client whatever options they carry: only the client is cached,
// never the per-call parameters. For remote providers that also means the
// first call's API key wins for the process lifetime.
type Factory struct {
	cfg Config

	mu     sync.Mutex
	ollama *ollamaembed.EmbeddingService
	gemini *geminiembed.EmbeddingService
	openai *openaiembed.EmbeddingService
}

// NewFactory creates a factory with empty caches.
func NewFactory(cfg Config) *Factory {
	return &Factory{cfg: cfg}
}

// Create returns an embedding service bound to opts. Provider and API key
// validation happen here, before any network activity.
func (f *Factory) Create(opts domain.EmbeddingOptions) (driven.EmbeddingService, error) {
	opts = opts.Normalised()

	if !opts.Provider.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, string(opts.Provider))
	}

	if opts.Provider.RequiresAPIKey() && opts.APIKey == "" {
		opts.APIKey = os.Getenv(opts.Provider.EnvVar())
		if opts.APIKey == "" {
			return nil, fmt.Errorf("%w: provider %s needs an API key from the options or %s",
				domain.ErrMissingAPIKey, opts.Provider, opts.Provider.EnvVar())
		}
	}

	svc := &service{opts: opts}

	var err error
	switch opts.Provider {
	case domain.ProviderLocal:
		svc.local = f.localClient()
	case domain.ProviderGemini:
		svc.gemini, err = f.geminiClient(opts.APIKey)
	case domain.ProviderOpenAI:
		svc.openai, err = f.openaiClient(opts.APIKey)
	}
	if err != nil {
		return nil, err
	}

	return svc, nil
}

// Generate is a convenience that resolves opts and embeds text in one
// call. It is what the CLI and services use for one-shot embeddings.
func (f *Factory) Generate(ctx context.Context, text string, opts domain.EmbeddingOptions) ([]float32, error) {
	svc, err := f.Create(opts)
	if err != nil {
		return nil, err
	}
	return svc.Embed(ctx, text)
}

// Close releases every cached provider client.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ollama != nil {
		f.ollama.Close()
		f.ollama = nil
	}
	if f.gemini != nil {
		f.gemini.Close()
		f.gemini = nil
	}
	if f.openai != nil {
		f.openai.Close()
		f.openai = nil
	}
	return nil
}

// localClient returns the cached Ollama client, constructing it once.
func (f *Factory) localClient() *ollamaembed.EmbeddingService {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ollama == nil {
		logger.Debug("initialising local embedding client (model %s)", f.cfg.OllamaModel)
		f.ollama = ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL: f.cfg.OllamaURL,
			Model:   f.cfg.OllamaModel,
		})
	}
	return f.ollama
}

// geminiClient returns the cached Gemini client, constructing it once.
func (f *Factory) geminiClient(apiKey string) (*geminiembed.EmbeddingService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.gemini == nil {
		logger.Debug("initialising gemini embedding client")
		svc, err := geminiembed.NewEmbeddingService(geminiembed.Config{
			APIKey:  apiKey,
			BaseURL: f.cfg.GeminiURL,
			Model:   f.cfg.GeminiModel,
		})
		if err != nil {
			return nil, err
		}
		f.gemini = svc
	}
	return f.gemini, nil
}

// openaiClient returns the cached OpenAI client, constructing it once.
func (f *Factory) openaiClient(apiKey string) (*openaiembed.EmbeddingService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.openai == nil {
		logger.Debug("initialising openai embedding client")
		svc, err := openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:  apiKey,
			BaseURL: f.cfg.OpenAIURL,
		})
		if err != nil {
			return nil, err
		}
		f.openai = svc
	}
	return f.openai, nil
}
