// Package domain holds the core entities of the article index.
//
// It sits at the centre of the hexagon and imports nothing outside the
// standard library. The fundamental types:
//
//   - Article: an indexed markdown document with metadata and embedding
//   - RankedArticle: an article paired with its distance to a query
//   - EmbeddingOptions: provider selection and vector parameters
//   - IndexOptions / IndexSummary: inputs and outcome of an indexing run
//
// Every other package may depend on domain; domain depends on none of
// them.
package domain
