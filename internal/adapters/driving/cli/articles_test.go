package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

func TestArticlesCmd_Use(t *testing.T) {
	assert.Equal(t, "articles", articlesCmd.Use)
}

func TestArticlesCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, 3)
	for _, cmd := range articlesCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "list")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "folders")
}

func TestArticlesListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "guides/getting-started")
	assert.Contains(t, buf.String(), "Getting Started")
	assert.Contains(t, buf.String(), "Total: 2 articles")
}

func TestArticlesListCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "list", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		articlesJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Slug\"")
	assert.Contains(t, buf.String(), "\"Title\"")
}

func TestArticlesListCmd_FolderFlag(t *testing.T) {
	mock := &mockArticleService{
		articles: []domain.Article{{Slug: "guides/one", Title: "One", Folder: "guides"}},
	}
	oldService := articleService
	articleService = mock
	defer func() {
		articleService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "list", "--folder", "guides"})
	defer func() {
		rootCmd.SetArgs(nil)
		articlesFolder = "" // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "guides", mock.gotFolder)
	assert.Contains(t, buf.String(), "guides/one")
}

func TestArticlesListCmd_Empty(t *testing.T) {
	oldService := articleService
	articleService = &mockArticleService{}
	defer func() {
		articleService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No articles found")
}

func TestArticlesListCmd_ServiceNotConfigured(t *testing.T) {
	oldService := articleService
	articleService = nil
	defer func() {
		articleService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"articles", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "article service not configured")
}

func TestArticlesShowCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "show", "guides/getting-started"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Article: guides/getting-started")
	assert.Contains(t, buf.String(), "Getting Started")
	assert.Contains(t, buf.String(), "Install the CLI")
}

func TestArticlesShowCmd_RequiresSlug(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"articles", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestArticlesShowCmd_NotFound(t *testing.T) {
	oldService := articleService
	articleService = &mockArticleService{err: domain.ErrNotFound}
	defer func() {
		articleService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"articles", "show", "missing/slug"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get article")
}

func TestArticlesFoldersCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "folders"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "guides")
	assert.Contains(t, buf.String(), "api")
	assert.Contains(t, buf.String(), "Total: 3 folders")
}

func TestArticlesFoldersCmd_Empty(t *testing.T) {
	oldService := articleService
	articleService = &mockArticleService{}
	defer func() {
		articleService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "folders"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No folders found")
}

func TestArticlesCmd_TableFlagFlowsToService(t *testing.T) {
	mock := &mockArticleService{folders: []string{"root"}}
	oldService := articleService
	articleService = mock
	defer func() {
		articleService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"articles", "folders", "--table", "notes"})
	defer func() {
		rootCmd.SetArgs(nil)
		articlesTable = "" // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "notes", mock.gotTable)
}
