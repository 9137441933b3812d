package driving

import (
	"context"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// IndexService builds and maintains the article index.
type IndexService interface {
	// Index walks the content tree in opts and fully replaces the table's
	// contents with the discovered documents. Per-file failures are
	// counted in the summary, never fatal to the run. An empty scan
	// returns a zero summary and leaves existing rows untouched.
	Index(ctx context.Context, opts domain.IndexOptions) (*domain.IndexSummary, error)

	// EnsureTable creates the article table and its indexes if absent.
	// Idempotent: safe to call on every startup.
	EnsureTable(ctx context.Context, table string, dimensions int) error
}
