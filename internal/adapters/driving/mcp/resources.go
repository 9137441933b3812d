package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Canopy resources.
	uriScheme = "canopy://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing articles.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "articles",
		Name:        "articles",
		Description: "List of all indexed articles",
		MIMEType:    "application/json",
	}, s.handleArticlesResource)

	// Static resource for listing folders.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "folders",
		Name:        "folders",
		Description: "Folders that contain indexed articles",
		MIMEType:    "application/json",
	}, s.handleFoldersResource)

	// Template for article content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "article/{slug}",
		Name:        "article-content",
		Description: "Content of a specific article",
		MIMEType:    "text/markdown",
	}, s.handleArticleContentResource)
}

// handleArticlesResource returns a list of all indexed articles.
func (s *Server) handleArticlesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Articles == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	articles, err := s.ports.Articles.GetAll(ctx, s.opts.Table)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	// Build simplified article list.
	type articleInfo struct {
		Slug   string `json:"slug"`
		Title  string `json:"title"`
		Folder string `json:"folder"`
	}

	infos := make([]articleInfo, len(articles))
	for i := range articles {
		infos[i] = articleInfo{
			Slug:   articles[i].Slug,
			Title:  articles[i].Title,
			Folder: articles[i].Folder,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling articles: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFoldersResource returns the distinct folders in the index.
func (s *Server) handleFoldersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Articles == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	folders, err := s.ports.Articles.GetFolders(ctx, s.opts.Table)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	data, err := json.MarshalIndent(folders, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling folders: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleArticleContentResource returns the content of a specific article.
func (s *Server) handleArticleContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Articles == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract slug from URI: canopy://article/{slug}
	slug := extractSlug(req.Params.URI)
	if slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	article, err := s.ports.Articles.GetBySlug(ctx, s.opts.Table, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting article: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     article.Content,
		}},
	}, nil
}

// extractSlug extracts the article slug from a URI like canopy://article/{slug}.
// Slugs may contain slashes, so everything after the prefix belongs to the slug.
func extractSlug(uri string) string {
	const prefix = uriScheme + "article/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
