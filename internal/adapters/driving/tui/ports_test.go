package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(
		ctx context.Context, query string, opts domain.SearchOptions,
	) ([]domain.RankedArticle, error)
}

func (m *MockSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.RankedArticle, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return nil, nil
}

// MockArticleService implements driving.ArticleService for testing.
type MockArticleService struct {
	GetAllFunc      func(ctx context.Context, table string) ([]domain.Article, error)
	GetBySlugFunc   func(ctx context.Context, table, slug string) (*domain.Article, error)
	GetByFolderFunc func(ctx context.Context, table, folder string) ([]domain.Article, error)
	GetFoldersFunc  func(ctx context.Context, table string) ([]string, error)
}

func (m *MockArticleService) GetAll(ctx context.Context, table string) ([]domain.Article, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, table)
	}
	return nil, nil
}

func (m *MockArticleService) GetBySlug(ctx context.Context, table, slug string) (*domain.Article, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, table, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *MockArticleService) GetByFolder(ctx context.Context, table, folder string) ([]domain.Article, error) {
	if m.GetByFolderFunc != nil {
		return m.GetByFolderFunc(ctx, table, folder)
	}
	return nil, nil
}

func (m *MockArticleService) GetFolders(ctx context.Context, table string) ([]string, error) {
	if m.GetFoldersFunc != nil {
		return m.GetFoldersFunc(ctx, table)
	}
	return nil, nil
}

func TestNewPorts(t *testing.T) {
	search := &MockSearchService{}
	articles := &MockArticleService{}

	ports := NewPorts(search, articles)

	require.NotNil(t, ports)
	assert.Equal(t, search, ports.Search)
	assert.Equal(t, articles, ports.Articles)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Search:   &MockSearchService{},
		Articles: &MockArticleService{},
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingSearch(t *testing.T) {
	ports := &Ports{
		Search:   nil,
		Articles: &MockArticleService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestPorts_Validate_MissingArticles(t *testing.T) {
	ports := &Ports{
		Search:   &MockSearchService{},
		Articles: nil,
	}

	err := ports.Validate()

	// Articles is optional; the reading pane falls back to result content.
	assert.NoError(t, err)
}
