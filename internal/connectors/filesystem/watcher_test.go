package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

func TestWatcher_Watch(t *testing.T) {
	t.Run("reports created markdown files", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "canopy-test-watch-*")
		require.NoError(t, err)
		defer os.RemoveAll(tempDir)

		watcher, err := NewWatcher(tempDir, domain.DefaultExtensions, domain.DefaultExcludes)
		require.NoError(t, err)
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := watcher.Watch(ctx)
		require.NoError(t, err)
		require.NotNil(t, events)

		go func() {
			time.Sleep(100 * time.Millisecond)
			os.WriteFile(filepath.Join(tempDir, "new-note.md"), []byte("# New"), 0644)
		}()

		select {
		case ev := <-events:
			assert.Equal(t, "new-note.md", ev.RelPath)
			assert.Equal(t, OpCreate, ev.Op)
		case <-time.After(3 * time.Second):
			t.Fatal("timeout waiting for create event")
		}
	})

	t.Run("ignores non-matching extensions", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "canopy-test-watch-ext-*")
		require.NoError(t, err)
		defer os.RemoveAll(tempDir)

		watcher, err := NewWatcher(tempDir, domain.DefaultExtensions, domain.DefaultExcludes)
		require.NoError(t, err)
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := watcher.Watch(ctx)
		require.NoError(t, err)

		go func() {
			time.Sleep(100 * time.Millisecond)
			os.WriteFile(filepath.Join(tempDir, "ignored.txt"), []byte("text"), 0644)
			time.Sleep(100 * time.Millisecond)
			os.WriteFile(filepath.Join(tempDir, "kept.md"), []byte("# Kept"), 0644)
		}()

		select {
		case ev := <-events:
			assert.Equal(t, "kept.md", ev.RelPath)
		case <-time.After(3 * time.Second):
			t.Fatal("timeout waiting for event")
		}
	})

	t.Run("closes channel when context is cancelled", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "canopy-test-watch-cancel-*")
		require.NoError(t, err)
		defer os.RemoveAll(tempDir)

		watcher, err := NewWatcher(tempDir, domain.DefaultExtensions, domain.DefaultExcludes)
		require.NoError(t, err)
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		events, err := watcher.Watch(ctx)
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-events:
			assert.False(t, ok, "channel should be closed")
		case <-time.After(2 * time.Second):
			t.Fatal("channel did not close after cancellation")
		}
	})

	t.Run("returns error for non-existent root", func(t *testing.T) {
		_, err := NewWatcher("/non/existent/path", domain.DefaultExtensions, nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("returns error after close", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "canopy-test-watch-closed-*")
		require.NoError(t, err)
		defer os.RemoveAll(tempDir)

		watcher, err := NewWatcher(tempDir, domain.DefaultExtensions, nil)
		require.NoError(t, err)
		require.NoError(t, watcher.Close())

		events, err := watcher.Watch(context.Background())

		assert.Error(t, err)
		assert.Nil(t, events)
		assert.Contains(t, err.Error(), "closed")
	})
}

func TestWatcher_Close(t *testing.T) {
	t.Run("close is idempotent", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "canopy-test-close-*")
		require.NoError(t, err)
		defer os.RemoveAll(tempDir)

		watcher, err := NewWatcher(tempDir, domain.DefaultExtensions, nil)
		require.NoError(t, err)

		assert.NoError(t, watcher.Close())
		assert.NoError(t, watcher.Close())
		assert.NoError(t, watcher.Close())
	})
}

func TestOpLabel(t *testing.T) {
	tests := []struct {
		name     string
		op       fsnotify.Op
		expected string
	}{
		{"create", fsnotify.Create, OpCreate},
		{"write", fsnotify.Write, OpWrite},
		{"remove", fsnotify.Remove, OpRemove},
		{"rename", fsnotify.Rename, OpRename},
		{"chmod is dropped", fsnotify.Chmod, ""},
		{"create and write prefers create", fsnotify.Create | fsnotify.Write, OpCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, opLabel(tt.op))
		})
	}
}
