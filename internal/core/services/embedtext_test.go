package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareEmbeddingText(t *testing.T) {
	tests := []struct {
		name   string
		fields EmbeddingFields
		want   string
	}{
		{
			name: "all parts present",
			fields: EmbeddingFields{
				Title:       "Getting Started",
				Description: "A guided tour",
				Tags:        []string{"guide", "intro"},
				Content:     "Welcome.",
			},
			want: "Getting Started\n\nA guided tour\n\nTags: guide, intro\n\nWelcome.",
		},
		{
			name:   "title and content only",
			fields: EmbeddingFields{Title: "Notes", Content: "Body."},
			want:   "Notes\n\nBody.",
		},
		{
			name:   "missing description leaves no gap",
			fields: EmbeddingFields{Title: "Notes", Tags: []string{"a"}, Content: "Body."},
			want:   "Notes\n\nTags: a\n\nBody.",
		},
		{
			name:   "single tag has no separator",
			fields: EmbeddingFields{Tags: []string{"solo"}},
			want:   "Tags: solo",
		},
		{
			name:   "empty tag list is skipped",
			fields: EmbeddingFields{Title: "Notes", Tags: []string{}},
			want:   "Notes",
		},
		{
			name:   "content only",
			fields: EmbeddingFields{Content: "Just the body."},
			want:   "Just the body.",
		},
		{
			name:   "nothing present",
			fields: EmbeddingFields{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrepareEmbeddingText(tt.fields))
		})
	}
}
