package file

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// Canonical configuration keys.
const (
	KeyContentPath  = "content_path"
	KeyDatabasePath = "database_path"
	KeyTable        = "table"
	KeyExtensions   = "extensions"
	KeyExclude      = "exclude"

	KeyEmbeddingProvider    = "embedding.provider"
	KeyEmbeddingDimensions  = "embedding.dimensions"
	KeyEmbeddingMaxChars    = "embedding.max_chars"
	KeyEmbeddingOllamaURL   = "embedding.ollama_url"
	KeyEmbeddingOllamaModel = "embedding.ollama_model"
	KeyEmbeddingOpenAIURL   = "embedding.openai_url"
	KeyEmbeddingGeminiURL   = "embedding.gemini_url"
)

// keyKind describes how a setting's value is typed in the TOML file.
type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindStringSlice
)

// knownKeys maps every settable key to its value type.
var knownKeys = map[string]keyKind{
	KeyContentPath:          kindString,
	KeyDatabasePath:         kindString,
	KeyTable:                kindString,
	KeyExtensions:           kindStringSlice,
	KeyExclude:              kindStringSlice,
	KeyEmbeddingProvider:    kindString,
	KeyEmbeddingDimensions:  kindInt,
	KeyEmbeddingMaxChars:    kindInt,
	KeyEmbeddingOllamaURL:   kindString,
	KeyEmbeddingOllamaModel: kindString,
	KeyEmbeddingOpenAIURL:   kindString,
	KeyEmbeddingGeminiURL:   kindString,
}

// KnownKeys returns every settable configuration key, sorted.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for key := range knownKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a settable configuration key.
func IsKnownKey(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// ParseValue coerces a raw string into the typed value the key stores.
// Integer keys parse with strconv; list keys split on commas with
// whitespace trimmed. API keys are rejected outright: remote providers
// read them from flags or environment variables, never from the file.
func ParseValue(key, raw string) (any, error) {
	if strings.Contains(key, "api_key") {
		return nil, fmt.Errorf("%w: API keys are read from the environment, not stored in config", domain.ErrInvalidInput)
	}

	kind, ok := knownKeys[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	switch kind {
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %s needs an integer value, got %q", domain.ErrInvalidInput, key, raw)
		}
		return n, nil
	case kindStringSlice:
		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
		return values, nil
	default:
		return strings.TrimSpace(raw), nil
	}
}
