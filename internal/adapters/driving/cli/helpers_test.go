package cli

import (
	"context"
	"errors"
	"time"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/storage/memory"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// mockSearchService returns canned results and records the last call.
type mockSearchService struct {
	results  []domain.RankedArticle
	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.RankedArticle, error) {
	m.gotQuery = query
	m.gotOpts = opts
	return m.results, nil
}

// mockSearchServiceError fails every search.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(
	_ context.Context, _ string, _ domain.SearchOptions,
) ([]domain.RankedArticle, error) {
	return nil, errors.New("embedding backend unavailable")
}

// mockIndexService records calls and returns a fixed summary.
type mockIndexService struct {
	summary       *domain.IndexSummary
	err           error
	gotOpts       domain.IndexOptions
	gotTable      string
	gotDimensions int
}

func (m *mockIndexService) Index(
	_ context.Context, opts domain.IndexOptions,
) (*domain.IndexSummary, error) {
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.summary != nil {
		return m.summary, nil
	}
	return &domain.IndexSummary{Success: 2, Failed: 0, Total: 2}, nil
}

func (m *mockIndexService) EnsureTable(_ context.Context, table string, dimensions int) error {
	m.gotTable = table
	m.gotDimensions = dimensions
	return m.err
}

// mockArticleService serves canned articles and records the last call.
type mockArticleService struct {
	articles  []domain.Article
	article   *domain.Article
	folders   []string
	err       error
	gotTable  string
	gotSlug   string
	gotFolder string
}

func (m *mockArticleService) GetAll(_ context.Context, table string) ([]domain.Article, error) {
	m.gotTable = table
	return m.articles, m.err
}

func (m *mockArticleService) GetBySlug(_ context.Context, table, slug string) (*domain.Article, error) {
	m.gotTable = table
	m.gotSlug = slug
	if m.err != nil {
		return nil, m.err
	}
	if m.article == nil {
		return nil, domain.ErrNotFound
	}
	return m.article, nil
}

func (m *mockArticleService) GetByFolder(_ context.Context, table, folder string) ([]domain.Article, error) {
	m.gotTable = table
	m.gotFolder = folder
	return m.articles, m.err
}

func (m *mockArticleService) GetFolders(_ context.Context, table string) ([]string, error) {
	m.gotTable = table
	return m.folders, m.err
}

// failingConfigStore wraps the memory store to make writes fail.
type failingConfigStore struct {
	*memory.ConfigStore
	setErr error
}

func (s *failingConfigStore) Set(_ string, _ any) error {
	return s.setErr
}

// testRankedArticles is the result set the mock search service serves.
func testRankedArticles() []domain.RankedArticle {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []domain.RankedArticle{
		{
			Article: domain.Article{
				ID:        1,
				Slug:      "guides/getting-started",
				Title:     "Getting Started",
				Content:   "Install the CLI and index your content.",
				Folder:    "guides",
				Tags:      []string{"intro", "setup"},
				CreatedAt: now,
				UpdatedAt: now,
			},
			Distance: 0.12,
		},
		{
			Article: domain.Article{
				ID:        2,
				Slug:      "api/authentication",
				Title:     "Authentication",
				Content:   "Authenticate requests with an API key.",
				Folder:    "api",
				Tags:      []string{},
				CreatedAt: now,
				UpdatedAt: now,
			},
			Distance: 0.34,
		},
	}
}

// setupTestServices wires mock services into the command tree and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldIndex := indexService
	oldSearch := searchService
	oldArticles := articleService
	oldConfig := configStore

	ranked := testRankedArticles()
	articles := make([]domain.Article, 0, len(ranked))
	for i := range ranked {
		articles = append(articles, ranked[i].Article)
	}

	SetServices(Services{
		Index:  &mockIndexService{},
		Search: &mockSearchService{results: ranked},
		Articles: &mockArticleService{
			articles: articles,
			article:  &articles[0],
			folders:  []string{"api", "guides", "root"},
		},
		Config: memory.NewConfigStore(),
	})

	return func() {
		SetServices(Services{
			Index:    oldIndex,
			Search:   oldSearch,
			Articles: oldArticles,
			Config:   oldConfig,
		})
	}
}
