package driving

import (
	"context"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// ArticleService provides plain article lookups, no embedding involved.
type ArticleService interface {
	// GetAll returns every article in the table, ordered by title.
	GetAll(ctx context.Context, table string) ([]domain.Article, error)

	// GetBySlug retrieves one article, or domain.ErrNotFound.
	GetBySlug(ctx context.Context, table, slug string) (*domain.Article, error)

	// GetByFolder returns the articles whose folder matches exactly,
	// ordered by title.
	GetByFolder(ctx context.Context, table, folder string) ([]domain.Article, error)

	// GetFolders returns the distinct folder values, ordered ascending.
	GetFolders(ctx context.Context, table string) ([]string, error)
}
