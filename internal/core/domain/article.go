package domain

import "time"

// RootFolder is the folder value assigned to articles that sit directly
// at the content tree's root rather than inside a subdirectory.
const RootFolder = "root"

// DefaultTable is the table articles are indexed into unless a caller
// overrides it.
const DefaultTable = "articles"

// Article represents an indexed markdown document.
// It is the canonical representation after front-matter extraction.
type Article struct {
	// ID is the store-assigned numeric identifier.
	ID int64

	// Slug uniquely identifies the article within a table. It is derived
	// from the file's path relative to the content root, with the markdown
	// extension stripped and path separators normalised to "/". The slug is
	// stable across re-indexes as long as the path is unchanged.
	Slug string

	// Title is the human-readable title, from front-matter when present,
	// otherwise derived from the filename.
	Title string

	// Content is the document body with front-matter stripped.
	Content string

	// Folder is the directory component of the relative path, or
	// RootFolder for articles at the content root.
	Folder string

	// Tags holds the front-matter tags. Never nil: absent or malformed
	// front-matter tags become an empty slice.
	Tags []string

	// Embedding is the vector representation used for semantic search.
	// Its length always equals the table's configured dimensionality.
	Embedding []float32

	// CreatedAt is when the article row was inserted.
	CreatedAt time.Time

	// UpdatedAt is when the article row was last written.
	UpdatedAt time.Time
}

// RankedArticle pairs an article with its cosine distance to a query
// embedding. Lower distance means more similar.
type RankedArticle struct {
	Article

	// Distance is the cosine distance to the query vector.
	Distance float64
}
