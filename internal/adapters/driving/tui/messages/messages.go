// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Results []domain.RankedArticle
	Err     error
}

// ArticleLoaded carries a full article for the reading pane.
type ArticleLoaded struct {
	Article *domain.Article
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
