package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driving"
)

// Ensure ArticleService implements the interface.
var _ driving.ArticleService = (*ArticleService)(nil)

// ArticleService provides plain lookups against the article store.
type ArticleService struct {
	store driven.ArticleStore
}

// NewArticleService creates a new article service.
func NewArticleService(store driven.ArticleStore) *ArticleService {
	return &ArticleService{store: store}
}

// GetAll returns every article in the table, ordered by title.
func (s *ArticleService) GetAll(ctx context.Context, table string) ([]domain.Article, error) {
	articles, err := s.store.GetAllArticles(ctx, tableOrDefault(table))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetBySlug retrieves one article by its slug. Absence surfaces as
// domain.ErrNotFound, not a nil result.
func (s *ArticleService) GetBySlug(ctx context.Context, table, slug string) (*domain.Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrInvalidInput)
	}

	return s.store.GetArticleBySlug(ctx, tableOrDefault(table), slug)
}

// GetByFolder returns the folder's articles, ordered by title. An
// unknown folder yields an empty slice.
func (s *ArticleService) GetByFolder(ctx context.Context, table, folder string) ([]domain.Article, error) {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = domain.RootFolder
	}

	articles, err := s.store.GetArticlesByFolder(ctx, tableOrDefault(table), folder)
	if err != nil {
		return nil, fmt.Errorf("list folder articles: %w", err)
	}
	return articles, nil
}

// GetFolders returns the distinct folder values, ordered ascending.
func (s *ArticleService) GetFolders(ctx context.Context, table string) ([]string, error) {
	folders, err := s.store.GetFolders(ctx, tableOrDefault(table))
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// tableOrDefault falls back to the default article table name.
func tableOrDefault(table string) string {
	if strings.TrimSpace(table) == "" {
		return domain.DefaultTable
	}
	return table
}
