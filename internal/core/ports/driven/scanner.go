package driven

import (
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// ContentScanner enumerates indexable files under a content root.
type ContentScanner interface {
	// Scan walks root recursively, skipping directories named in exclude
	// or starting with ".", and collects files whose extension is in
	// extensions. Results come back in traversal order, which is stable
	// for a given filesystem listing but not globally sorted.
	Scan(root string, extensions, exclude []string) ([]domain.ContentFile, error)
}
