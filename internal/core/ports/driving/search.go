package driving

import (
	"context"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// SearchService provides semantic search to external actors.
type SearchService interface {
	// Search embeds the query and returns stored articles ranked by
	// ascending cosine distance. An empty store yields an empty slice,
	// not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RankedArticle, error)
}
