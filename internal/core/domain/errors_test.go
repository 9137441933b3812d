package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	errs := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnknownProvider", ErrUnknownProvider},
		{"ErrMissingAPIKey", ErrMissingAPIKey},
		{"ErrEmbeddingUnavailable", ErrEmbeddingUnavailable},
		{"ErrDuplicateSlug", ErrDuplicateSlug},
	}

	for _, tc := range errs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}

// TestErrors_Distinct tests that the domain errors are distinguishable
func TestErrors_Distinct(t *testing.T) {
	errs := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrUnknownProvider,
		ErrMissingAPIKey,
		ErrEmbeddingUnavailable,
		ErrDuplicateSlug,
	}

	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}

// TestErrors_WrappingPreservesIdentity tests errors.Is through fmt.Errorf wrapping
func TestErrors_WrappingPreservesIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get article guides/intro: %w", ErrNotFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
}
