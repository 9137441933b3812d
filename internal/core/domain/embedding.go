package domain

const unknownDescription = "Unknown"

// Provider identifies an embedding backend.
type Provider string

// Available embedding providers.
const (
	// ProviderLocal is a local model served by an Ollama instance.
	ProviderLocal Provider = "local"

	// ProviderGemini is the Google Gemini embedding API.
	ProviderGemini Provider = "gemini"

	// ProviderOpenAI is the OpenAI embedding API.
	ProviderOpenAI Provider = "openai"
)

// DefaultProvider is used when a caller does not select a provider.
const DefaultProvider = ProviderLocal

// Embedding defaults applied when options leave a field zero.
const (
	// DefaultDimensions is the target vector length for stored embeddings.
	DefaultDimensions = 768

	// DefaultMaxChars caps the characters of text sent to any provider.
	DefaultMaxChars = 8000
)

// IsValid returns true if the provider is recognised.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGemini, ProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p Provider) RequiresAPIKey() bool {
	return p == ProviderGemini || p == ProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p Provider) IsLocal() bool {
	return p == ProviderLocal
}

// EnvVar returns the environment variable consulted for the provider's API
// key when the options carry none, or "" for providers without keys.
func (p Provider) EnvVar() string {
	switch p {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

// String returns the string representation.
func (p Provider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p Provider) Description() string {
	switch p {
	case ProviderLocal:
		return "Local model via Ollama (384 native dimensions, padded)"
	case ProviderGemini:
		return "Google Gemini (cloud, 768 native dimensions)"
	case ProviderOpenAI:
		return "OpenAI (cloud, caller-selected dimensions)"
	default:
		return unknownDescription
	}
}

// EmbeddingOptions selects a provider and the vector parameters for a
// single embedding call. Options travel with each call; only the
// provider's client object is cached between calls.
type EmbeddingOptions struct {
	// Provider names the backend. Empty selects DefaultProvider.
	Provider Provider

	// APIKey authenticates remote providers. When empty, the provider's
	// environment variable is consulted before failing.
	APIKey string

	// Dimensions is the target vector length. Zero selects
	// DefaultDimensions.
	Dimensions int

	// MaxChars truncates input text before the provider sees it. Zero
	// selects DefaultMaxChars.
	MaxChars int
}

// Normalised returns a copy with zero fields replaced by defaults.
func (o EmbeddingOptions) Normalised() EmbeddingOptions {
	if o.Provider == "" {
		o.Provider = DefaultProvider
	}
	if o.Dimensions <= 0 {
		o.Dimensions = DefaultDimensions
	}
	if o.MaxChars <= 0 {
		o.MaxChars = DefaultMaxChars
	}
	return o
}
