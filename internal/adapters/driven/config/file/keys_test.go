package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

func TestKnownKeys_SortedAndComplete(t *testing.T) {
	keys := KnownKeys()

	require.Len(t, keys, len(knownKeys))
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, KeyContentPath)
	assert.Contains(t, keys, KeyEmbeddingProvider)
}

func TestIsKnownKey(t *testing.T) {
	assert.True(t, IsKnownKey(KeyTable))
	assert.True(t, IsKnownKey(KeyEmbeddingDimensions))
	assert.False(t, IsKnownKey("no_such_key"))
	assert.False(t, IsKnownKey(""))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		raw     string
		want    any
		wantErr bool
	}{
		{
			name: "string value is trimmed",
			key:  KeyContentPath,
			raw:  "  /srv/content  ",
			want: "/srv/content",
		},
		{
			name: "integer value",
			key:  KeyEmbeddingDimensions,
			raw:  "1536",
			want: 1536,
		},
		{
			name: "integer value with surrounding whitespace",
			key:  KeyEmbeddingMaxChars,
			raw:  " 4000 ",
			want: 4000,
		},
		{
			name:    "non-integer for integer key",
			key:     KeyEmbeddingDimensions,
			raw:     "lots",
			wantErr: true,
		},
		{
			name: "comma list splits and trims",
			key:  KeyExtensions,
			raw:  ".md, .markdown",
			want: []string{".md", ".markdown"},
		},
		{
			name: "empty list entries are dropped",
			key:  KeyExclude,
			raw:  "node_modules,,dist, ",
			want: []string{"node_modules", "dist"},
		},
		{
			name:    "unknown key",
			key:     "embedding.nope",
			raw:     "x",
			wantErr: true,
		},
		{
			name:    "api keys are never stored",
			key:     "embedding.api_key",
			raw:     "sk-secret",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.key, tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue_APIKeyMessage(t *testing.T) {
	_, err := ParseValue("embedding.api_key", "sk-secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}
