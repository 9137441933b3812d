// Package file provides the TOML-backed configuration store.
//
// Configuration lives at ~/.canopy/config.toml with 0600 permissions.
// Keys are addressed by dotted path ("embedding.provider") and stored on
// disk as nested TOML tables. The canonical key set is declared in
// keys.go; API keys are deliberately not part of it.
package file
