// Package driven declares the interfaces core services call out
// through. Adapters under internal/adapters/driven and the filesystem
// connector implement them.
//
//   - ArticleStore: article persistence and similarity queries
//   - EmbeddingFactory: resolves embedding options to a provider client
//   - EmbeddingService: turns text into vectors
//   - ContentScanner: enumerates indexable files in a content tree
//   - DocumentParser: splits front-matter metadata from document bodies
//   - ConfigStore: application settings
//
// The package imports domain and nothing else, so adapters can be
// swapped without touching core.
package driven
