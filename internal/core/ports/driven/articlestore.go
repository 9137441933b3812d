package driven

import (
	"context"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// ArticleStore persists articles and answers similarity queries.
// Backed by SQLite with a registered vector distance function.
//
// Every method is parameterised by table name so multiple article tables
// can share one database. The store owns the connection lifecycle; core
// services never open or close it.
type ArticleStore interface {
	// CreateTable creates the article table and its indexes if absent.
	// The embedding column is sized to dimensions. Idempotent: safe to
	// call on every startup.
	CreateTable(ctx context.Context, table string, dimensions int) error

	// Clear removes all rows from the table.
	Clear(ctx context.Context, table string) error

	// InsertArticle stores a new article row. Timestamps are set by the
	// store at insert time. A slug collision returns an error wrapping
	// domain.ErrDuplicateSlug.
	InsertArticle(ctx context.Context, table string, article *domain.Article) error

	// SearchSimilar returns up to limit rows with non-null embeddings,
	// ranked by ascending cosine distance to the query vector.
	SearchSimilar(ctx context.Context, table string, query []float32, limit int) ([]domain.RankedArticle, error)

	// GetAllArticles returns all rows ordered by title.
	GetAllArticles(ctx context.Context, table string) ([]domain.Article, error)

	// GetArticleBySlug retrieves one article, or domain.ErrNotFound.
	GetArticleBySlug(ctx context.Context, table, slug string) (*domain.Article, error)

	// GetArticlesByFolder returns rows matching folder exactly, ordered
	// by title.
	GetArticlesByFolder(ctx context.Context, table, folder string) ([]domain.Article, error)

	// GetFolders returns distinct folder values, ordered ascending.
	GetFolders(ctx context.Context, table string) ([]string, error)
}
