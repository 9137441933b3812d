package domain

// DefaultSearchLimit caps result count when a caller does not set one.
const DefaultSearchLimit = 10

// SearchOptions configures a semantic search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero selects
	// DefaultSearchLimit.
	Limit int

	// Table is the table to query. Empty selects DefaultTable.
	Table string

	// Embedding carries the provider options used to embed the query.
	// Callers must keep provider and dimensions consistent with the
	// options used at index time; a mismatch produces meaningless
	// distances, not an error.
	Embedding EmbeddingOptions
}

// Normalised returns a copy with zero fields replaced by defaults.
func (o SearchOptions) Normalised() SearchOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultSearchLimit
	}
	if o.Table == "" {
		o.Table = DefaultTable
	}
	o.Embedding = o.Embedding.Normalised()
	return o
}
