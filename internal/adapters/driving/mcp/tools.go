package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// snippetLength bounds the content preview attached to search results.
const snippetLength = 160

// SearchInput is the input schema for the search_articles tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find articles"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_articles tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Folder   string   `json:"folder"`
	Tags     []string `json:"tags,omitempty"`
	Distance float64  `json:"distance"`
	Snippet  string   `json:"snippet,omitempty"`
}

// GetArticleInput is the input schema for the get_article tool.
type GetArticleInput struct {
	Slug string `json:"slug" jsonschema:"the slug of the article to retrieve"`
}

// ArticleOutput is the output schema for the get_article tool.
type ArticleOutput struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Folder  string   `json:"folder"`
	Tags    []string `json:"tags,omitempty"`
	Content string   `json:"content"`
}

// ListFoldersInput is the input schema for the list_folders tool.
type ListFoldersInput struct{}

// ListFoldersOutput is the output schema for the list_folders tool.
type ListFoldersOutput struct {
	Folders []string `json:"folders"`
	Count   int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_articles",
		Description: "Search the indexed articles by meaning and return the closest matches",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_article",
		Description: "Retrieve the full content of an article by its slug",
	}, s.handleGetArticle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_folders",
		Description: "List the folders that contain indexed articles",
	}, s.handleListFolders)
}

// handleSearch handles the search_articles tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	opts := domain.SearchOptions{
		Limit:     limit,
		Table:     s.opts.Table,
		Embedding: s.opts.Embedding,
	}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			Slug:     results[i].Slug,
			Title:    results[i].Title,
			Folder:   results[i].Folder,
			Tags:     results[i].Tags,
			Distance: results[i].Distance,
			Snippet:  snippet(results[i].Content),
		}
	}

	return nil, output, nil
}

// handleGetArticle handles the get_article tool invocation.
func (s *Server) handleGetArticle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetArticleInput,
) (*mcp.CallToolResult, ArticleOutput, error) {
	if s.ports.Articles == nil {
		return nil, ArticleOutput{}, errors.New("article service not configured")
	}

	article, err := s.ports.Articles.GetBySlug(ctx, s.opts.Table, input.Slug)
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	return nil, ArticleOutput{
		Slug:    article.Slug,
		Title:   article.Title,
		Folder:  article.Folder,
		Tags:    article.Tags,
		Content: article.Content,
	}, nil
}

// handleListFolders handles the list_folders tool invocation.
func (s *Server) handleListFolders(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListFoldersInput,
) (*mcp.CallToolResult, ListFoldersOutput, error) {
	if s.ports.Articles == nil {
		return nil, ListFoldersOutput{}, errors.New("article service not configured")
	}

	folders, err := s.ports.Articles.GetFolders(ctx, s.opts.Table)
	if err != nil {
		return nil, ListFoldersOutput{}, err
	}

	return nil, ListFoldersOutput{
		Folders: folders,
		Count:   len(folders),
	}, nil
}

// snippet returns the leading runes of content for use as a preview.
func snippet(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return strings.TrimSpace(string(runes[:snippetLength])) + "..."
}
