package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists settings as TOML in the canopy config directory.
//
// In memory, keys are dotted paths ("embedding.provider"); on disk they
// live as nested TOML tables, converted on load and save. API keys are
// never part of the file: remote providers read them from flags or
// environment variables at call time.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore opens the store at configDir/config.toml, creating the
// directory if needed. An empty configDir selects ~/.canopy.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".canopy")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return s, nil
}

// Get returns the raw value and whether the key exists.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString returns a string value, or "".
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt returns an integer value, or 0. TOML decoding produces int64,
// values set at runtime may be plain int.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// GetBool returns a boolean value, or false.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetStringSlice returns a string slice value, or nil. TOML decoding
// produces []any; non-string elements are skipped.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return nil
}

// Set stores a value and writes the file immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save writes the current settings to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the TOML file. The caller must hold the write lock.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(expand(s.data))
	if err != nil {
		return err
	}

	// Owner-only: the file holds local paths and provider choices.
	return os.WriteFile(s.filePath, data, 0600)
}

// Load replaces the in-memory settings with the file's contents. A
// missing file loads as empty, not as an error.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(raw, &loaded); err != nil {
		return err
	}

	s.data = make(map[string]any)
	flattenInto(s.data, loaded, "")
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flattenInto walks nested tables and records leaves under dotted keys,
// so {"embedding": {"provider": "local"}} lands as "embedding.provider".
func flattenInto(dst, src map[string]any, prefix string) {
	for key, value := range src {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			flattenInto(dst, nested, full)
			continue
		}
		dst[full] = value
	}
}

// expand is flattenInto's inverse: dotted keys become nested maps so
// the file round-trips as ordinary TOML tables.
func expand(flat map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := result
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}

	return result
}
