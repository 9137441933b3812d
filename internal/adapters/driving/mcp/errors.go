// Package mcp exposes the article index over the Model Context
// Protocol, so MCP clients such as Claude or Cursor can search and
// read articles through tools and resources.
package mcp

import "errors"

// ErrMissingSearchService is returned when the server is constructed
// without a search service.
var ErrMissingSearchService = errors.New("mcp: search service is required")
