package services

import "strings"

// EmbeddingFields carries the article parts that feed into one
// embedding. Empty fields are skipped entirely.
type EmbeddingFields struct {
	Title       string
	Description string
	Tags        []string
	Content     string
}

// PrepareEmbeddingText builds the text an article is embedded from:
// title, description, a "Tags: a, b" line, then content, each present
// part separated by a blank line. The order and separators are part of
// the embedding contract; changing them changes every stored vector.
func PrepareEmbeddingText(fields EmbeddingFields) string {
	parts := make([]string, 0, 4)

	if fields.Title != "" {
		parts = append(parts, fields.Title)
	}
	if fields.Description != "" {
		parts = append(parts, fields.Description)
	}
	if len(fields.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(fields.Tags, ", "))
	}
	if fields.Content != "" {
		parts = append(parts, fields.Content)
	}

	return strings.Join(parts, "\n\n")
}
