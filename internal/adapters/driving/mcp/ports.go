package mcp

import (
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driving"
)

// Ports bundles the driving ports the MCP server is wired with.
type Ports struct {
	// Search answers semantic queries.
	Search driving.SearchService

	// Articles provides direct slug and folder lookups.
	Articles driving.ArticleService
}

// Validate reports whether the required ports are present.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Articles is optional; article tools and resources degrade gracefully.
	return nil
}
