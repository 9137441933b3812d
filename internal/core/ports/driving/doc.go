// Package driving defines the interfaces external actors (CLI, TUI,
// MCP) use to reach core services: Indexer, SearchService, and
// ArticleService. The services package implements all of them.
package driving
