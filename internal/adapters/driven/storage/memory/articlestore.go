package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
)

// Ensure ArticleStore implements the interface.
var _ driven.ArticleStore = (*ArticleStore)(nil)

// articleTable holds one table's rows and its declared dimensionality.
type articleTable struct {
	dimensions int
	nextID     int64
	articles   []domain.Article
}

// ArticleStore is an in-memory implementation of driven.ArticleStore.
// It mirrors the SQLite store's observable behaviour: unique slugs,
// dimension-checked inserts, full-clear semantics, cosine ranking, and
// read paths that leave Article.Embedding nil.
type ArticleStore struct {
	mu     sync.RWMutex
	tables map[string]*articleTable
}

// NewArticleStore creates a new in-memory article store.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		tables: make(map[string]*articleTable),
	}
}

// CreateTable ensures a table exists. Re-creating an existing table is a
// no-op, whatever dimensions are requested.
func (s *ArticleStore) CreateTable(_ context.Context, table string, dimensions int) error {
	if table == "" {
		return fmt.Errorf("%w: table name is required", domain.ErrInvalidInput)
	}
	if dimensions <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %d", domain.ErrInvalidInput, dimensions)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[table]; !ok {
		s.tables[table] = &articleTable{dimensions: dimensions}
	}
	return nil
}

// Clear removes every article from the table.
func (s *ArticleStore) Clear(_ context.Context, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tableFor(table)
	if err != nil {
		return err
	}
	t.articles = nil
	return nil
}

// InsertArticle stores a new article and fills in its assigned ID.
func (s *ArticleStore) InsertArticle(_ context.Context, table string, article *domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tableFor(table)
	if err != nil {
		return err
	}

	if len(article.Embedding) != t.dimensions {
		return fmt.Errorf("embedding length %d does not match table dimensions %d",
			len(article.Embedding), t.dimensions)
	}

	for i := range t.articles {
		if t.articles[i].Slug == article.Slug {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, article.Slug)
		}
	}

	if article.Folder == "" {
		article.Folder = domain.RootFolder
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	t.nextID++
	article.ID = t.nextID

	t.articles = append(t.articles, *article)
	return nil
}

// SearchSimilar returns up to limit articles ranked by ascending cosine
// distance to the query vector.
func (s *ArticleStore) SearchSimilar(
	_ context.Context, table string, query []float32, limit int,
) ([]domain.RankedArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.tableFor(table)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	results := make([]domain.RankedArticle, 0, len(t.articles))
	for i := range t.articles {
		results = append(results, domain.RankedArticle{
			Article:  withoutEmbedding(t.articles[i]),
			Distance: cosineDistance(t.articles[i].Embedding, query),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// GetAllArticles returns the table's articles ordered by title.
func (s *ArticleStore) GetAllArticles(_ context.Context, table string) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.tableFor(table)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(t.articles))
	for i := range t.articles {
		articles = append(articles, withoutEmbedding(t.articles[i]))
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Title < articles[j].Title
	})
	return articles, nil
}

// GetArticleBySlug returns the article with the given slug.
func (s *ArticleStore) GetArticleBySlug(_ context.Context, table, slug string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.tableFor(table)
	if err != nil {
		return nil, err
	}

	for i := range t.articles {
		if t.articles[i].Slug == slug {
			article := withoutEmbedding(t.articles[i])
			return &article, nil
		}
	}
	return nil, fmt.Errorf("%w: article %s", domain.ErrNotFound, slug)
}

// GetArticlesByFolder returns the folder's articles ordered by title.
func (s *ArticleStore) GetArticlesByFolder(_ context.Context, table, folder string) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.tableFor(table)
	if err != nil {
		return nil, err
	}

	articles := []domain.Article{}
	for i := range t.articles {
		if t.articles[i].Folder == folder {
			articles = append(articles, withoutEmbedding(t.articles[i]))
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Title < articles[j].Title
	})
	return articles, nil
}

// GetFolders returns the distinct folder names, sorted alphabetically.
func (s *ArticleStore) GetFolders(_ context.Context, table string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.tableFor(table)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	folders := []string{}
	for i := range t.articles {
		if !seen[t.articles[i].Folder] {
			seen[t.articles[i].Folder] = true
			folders = append(folders, t.articles[i].Folder)
		}
	}

	sort.Strings(folders)
	return folders, nil
}

// tableFor looks up a table; callers hold the lock.
func (s *ArticleStore) tableFor(table string) (*articleTable, error) {
	t, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("no such table: %s", table)
	}
	return t, nil
}

// withoutEmbedding copies an article minus its stored vector, matching
// the SQLite store's read behaviour.
func withoutEmbedding(article domain.Article) domain.Article {
	article.Embedding = nil
	return article
}

// cosineDistance computes 1 - cosine_similarity, or 1 for pairs with no
// defined angle (empty, mismatched, or zero-magnitude vectors).
func cosineDistance(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 1
	}

	var dot, magA, magB float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		magA += va * va
		magB += vb * vb
	}

	if magA == 0 || magB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(magA)*math.Sqrt(magB))
}
