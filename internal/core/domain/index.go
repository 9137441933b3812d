package domain

// Indexing defaults applied when options leave a field empty.
var (
	// DefaultExtensions are the file extensions collected during a scan.
	DefaultExtensions = []string{".md", ".markdown"}

	// DefaultExcludes are directory names never descended into. Hidden
	// directories (leading ".") are always skipped regardless of this list.
	DefaultExcludes = []string{"node_modules", ".git", "dist"}
)

// ProgressFunc reports indexing progress. It is invoked once per
// discovered file, before the file is processed, with the 1-based file
// number, the total file count, and the file's path relative to the
// content root.
type ProgressFunc func(current, total int, relPath string)

// IndexOptions configures a single indexing run over a content tree.
type IndexOptions struct {
	// ContentPath is the root directory to scan.
	ContentPath string

	// Extensions are the file extensions to collect. Empty selects
	// DefaultExtensions.
	Extensions []string

	// Exclude lists directory names to skip. Empty selects
	// DefaultExcludes.
	Exclude []string

	// Table is the destination table. Empty selects DefaultTable.
	Table string

	// Embedding carries the provider options used for every document in
	// the run.
	Embedding EmbeddingOptions

	// OnProgress, when non-nil, receives per-file progress callbacks.
	OnProgress ProgressFunc
}

// Normalised returns a copy with zero fields replaced by defaults.
func (o IndexOptions) Normalised() IndexOptions {
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	if o.Exclude == nil {
		o.Exclude = DefaultExcludes
	}
	if o.Table == "" {
		o.Table = DefaultTable
	}
	o.Embedding = o.Embedding.Normalised()
	return o
}

// IndexSummary reports the outcome of an indexing run. Success and Failed
// are mutually exclusive per file, so Success+Failed == Total on
// completion.
type IndexSummary struct {
	// Success is the number of documents indexed.
	Success int

	// Failed is the number of documents that could not be indexed.
	Failed int

	// Total is the number of files discovered by the scan.
	Total int
}
