package driven

// ConfigStore reads and writes application settings. The file adapter
// persists them as TOML under ~/.canopy; the memory adapter backs
// tests. Keys are dotted paths such as "embedding.provider".
//
// The typed getters never fail: a missing key or a value of the wrong
// type yields the zero value, so callers layer their own defaults on
// top.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns a string value, or "".
	GetString(key string) string

	// GetInt returns an integer value, or 0. Implementations accept
	// the int64 values TOML decoding produces.
	GetInt(key string) int

	// GetBool returns a boolean value, or false.
	GetBool(key string) bool

	// GetStringSlice returns a string slice value, or nil.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save writes the current settings to the backing store.
	Save() error

	// Load replaces the current settings with the backing store's.
	Load() error

	// Path identifies the backing store in user-facing messages.
	Path() string
}
