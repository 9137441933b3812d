package mcp

import (
	"context"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.RankedArticle
	err     error

	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.RankedArticle, error) {
	m.gotQuery = query
	m.gotOpts = opts
	return m.results, m.err
}

// mockArticleService is a mock implementation of driving.ArticleService.
type mockArticleService struct {
	articles []domain.Article
	article  *domain.Article
	folders  []string
	err      error

	gotTable string
	gotSlug  string
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
	return m.article, nil
}

func (m *mockArticleService) GetByFolder(_ context.Context, table, _ string) ([]domain.Article, error) {
	m.gotTable = table
	return m.articles, m.err
}

func (m *mockArticleService) GetFolders(_ context.Context, table string) ([]string, error) {
	m.gotTable = table
	return m.folders, m.err
}
