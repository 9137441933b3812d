// Package tui provides an interactive terminal user interface for canopy.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search capabilities.
	Search driving.SearchService

	// Articles provides plain article lookups for the reading pane.
	Articles driving.ArticleService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, articles driving.ArticleService) *Ports {
	return &Ports{
		Search:   search,
		Articles: articles,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Articles is optional; the reading pane falls back to result content.
	return nil
}
