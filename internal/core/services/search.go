package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driving"
	"github.com/veldt-labs/canopy-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks stored articles against free-text queries. Results
// only carry meaning when the query is embedded with the same provider
// and dimensions the articles were indexed with; keeping those aligned
// is the caller's responsibility.
type SearchService struct {
	store   driven.ArticleStore
	factory driven.EmbeddingFactory
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.ArticleStore, factory driven.EmbeddingFactory) *SearchService {
	return &SearchService{
		store:   store,
		factory: factory,
	}
}

// Search embeds the query and returns articles ranked by ascending
// cosine distance.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.RankedArticle, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	// Return empty for empty query
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.RankedArticle{}, nil
	}

	opts = opts.Normalised()
	logger.Debug("Table: %s, limit: %d, provider: %s, dimensions: %d",
		opts.Table, opts.Limit, opts.Embedding.Provider, opts.Embedding.Dimensions)

	embedder, err := s.factory.Create(opts.Embedding)
	if err != nil {
		return nil, fmt.Errorf("resolve embedding provider: %w", err)
	}

	embedding, err := embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	logger.Debug("Query embedding: %d dimensions", len(embedding))

	results, err := s.store.SearchSimilar(ctx, opts.Table, embedding, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Info("Final results: %d", len(results))
	return results, nil
}
