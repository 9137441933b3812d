package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockSearch := &mockSearchService{
			results: []domain.RankedArticle{
				{
					Article: domain.Article{
						Slug:    "guides/getting-started",
						Title:   "Getting Started",
						Folder:  "guides",
						Tags:    []string{"guide"},
						Content: "This is the content",
					},
					Distance: 0.12,
				},
			},
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		input := SearchInput{Query: "test", Limit: 10}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Len(t, output.Results, 1)
		assert.Equal(t, "guides/getting-started", output.Results[0].Slug)
		assert.Equal(t, "Getting Started", output.Results[0].Title)
		assert.Equal(t, "guides", output.Results[0].Folder)
		assert.Equal(t, []string{"guide"}, output.Results[0].Tags)
		assert.Equal(t, 0.12, output.Results[0].Distance)
		assert.Equal(t, "This is the content", output.Results[0].Snippet)
	})

	t.Run("default limit is 10", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		input := SearchInput{Query: "test", Limit: 0}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, domain.DefaultSearchLimit, mockSearch.gotOpts.Limit)
	})

	t.Run("server options flow into the query", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports, Options{
			Table:     "notes",
			Embedding: domain.EmbeddingOptions{Dimensions: 3},
		})
		require.NoError(t, err)

		input := SearchInput{Query: "test", Limit: 5}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "test", mockSearch.gotQuery)
		assert.Equal(t, "notes", mockSearch.gotOpts.Table)
		assert.Equal(t, 5, mockSearch.gotOpts.Limit)
		assert.Equal(t, 3, mockSearch.gotOpts.Embedding.Dimensions)
	})

	t.Run("long content is truncated to a snippet", func(t *testing.T) {
		mockSearch := &mockSearchService{
			results: []domain.RankedArticle{
				{Article: domain.Article{Content: strings.Repeat("word ", 100)}},
			},
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "test"})

		require.NoError(t, err)
		require.Len(t, output.Results, 1)
		got := output.Results[0].Snippet
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, utf8.RuneCountInString(got), snippetLength+3)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{
			err: errors.New("search failed"),
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		input := SearchInput{Query: "test"}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleGetArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("nil article service returns error", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		_, _, err = server.handleGetArticle(ctx, nil, GetArticleInput{Slug: "guides/intro"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "article service not configured")
	})

	t.Run("returns article successfully", func(t *testing.T) {
		mockArticles := &mockArticleService{
			article: &domain.Article{
				Slug:    "guides/intro",
				Title:   "Intro",
				Folder:  "guides",
				Tags:    []string{"guide", "intro"},
				Content: "# Intro\n\nWelcome.",
			},
		}

		ports := &Ports{Search: &mockSearchService{}, Articles: mockArticles}
		server, err := NewServer(ports, Options{Table: "notes"})
		require.NoError(t, err)

		_, output, err := server.handleGetArticle(ctx, nil, GetArticleInput{Slug: "guides/intro"})

		require.NoError(t, err)
		assert.Equal(t, "guides/intro", output.Slug)
		assert.Equal(t, "Intro", output.Title)
		assert.Equal(t, "guides", output.Folder)
		assert.Equal(t, []string{"guide", "intro"}, output.Tags)
		assert.Equal(t, "# Intro\n\nWelcome.", output.Content)
		assert.Equal(t, "notes", mockArticles.gotTable)
		assert.Equal(t, "guides/intro", mockArticles.gotSlug)
	})

	t.Run("propagates not found", func(t *testing.T) {
		mockArticles := &mockArticleService{err: domain.ErrNotFound}

		ports := &Ports{Search: &mockSearchService{}, Articles: mockArticles}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		_, _, err = server.handleGetArticle(ctx, nil, GetArticleInput{Slug: "missing"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleListFolders(t *testing.T) {
	ctx := context.Background()

	t.Run("nil article service returns error", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		_, _, err = server.handleListFolders(ctx, nil, ListFoldersInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "article service not configured")
	})

	t.Run("returns folders successfully", func(t *testing.T) {
		mockArticles := &mockArticleService{
			folders: []string{"api", "guides", "root"},
		}

		ports := &Ports{Search: &mockSearchService{}, Articles: mockArticles}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		_, output, err := server.handleListFolders(ctx, nil, ListFoldersInput{})

		require.NoError(t, err)
		assert.Equal(t, 3, output.Count)
		assert.Equal(t, []string{"api", "guides", "root"}, output.Folders)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		mockArticles := &mockArticleService{err: errors.New("storage error")}

		ports := &Ports{Search: &mockSearchService{}, Articles: mockArticles}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)

		_, _, err = server.handleListFolders(ctx, nil, ListFoldersInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage error")
	})
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "short content is unchanged",
			content:  "A short body.",
			expected: "A short body.",
		},
		{
			name:     "surrounding whitespace is trimmed",
			content:  "  padded  ",
			expected: "padded",
		},
		{
			name:     "empty content stays empty",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, snippet(tt.content))
		})
	}

	t.Run("long content gains an ellipsis", func(t *testing.T) {
		got := snippet(strings.Repeat("a", snippetLength*2))
		assert.Equal(t, strings.Repeat("a", snippetLength)+"...", got)
	})
}
