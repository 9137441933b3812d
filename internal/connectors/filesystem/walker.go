// Package filesystem provides content tree access for Canopy: a scanner
// that enumerates indexable files and a watcher that reports changes to
// them. The content root is the only data source Canopy reads.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
)

// Ensure Walker implements the interface.
var _ driven.ContentScanner = (*Walker)(nil)

// Walker enumerates indexable files in a content tree.
type Walker struct{}

// NewWalker creates a new content tree walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Scan walks root recursively and collects files whose extension is in
// extensions. Directories named in exclude, and hidden directories, are
// never descended into. Results come back in traversal order.
func (w *Walker) Scan(root string, extensions, exclude []string) ([]domain.ContentFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	var files []domain.ContentFile
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != absRoot && isExcludedDir(d.Name(), exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExtension(d.Name(), extensions) {
			return nil
		}
		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, domain.ContentFile{
			RelPath: filepath.ToSlash(rel),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return files, nil
}

// isExcludedDir reports whether a directory is skipped during traversal.
// Hidden directories are skipped regardless of the exclude list.
func isExcludedDir(name string, exclude []string) bool {
	if isHiddenName(name) {
		return true
	}
	for _, e := range exclude {
		if name == e {
			return true
		}
	}
	return false
}

// isHiddenName reports whether a single path component is hidden.
// "." and ".." are traversal markers, not hidden entries.
func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// isHiddenPath reports whether any component of a relative path is hidden.
func isHiddenPath(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if isHiddenName(part) {
			return true
		}
	}
	return false
}

// hasExtension reports whether a filename carries one of the extensions.
func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
