package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/veldt-labs/canopy-cli/internal/logger"
)

// Event op labels.
const (
	OpCreate = "create"
	OpWrite  = "write"
	OpRemove = "remove"
	OpRename = "rename"
)

// Event is a relevant change to an indexable file under a watched root.
type Event struct {
	// RelPath is the changed file's path relative to the watched root,
	// with separators normalised to "/".
	RelPath string

	// Op describes the change: create, write, remove or rename.
	Op string
}

// Watcher reports changes to indexable files under a content root.
// All non-excluded directories are watched; directories created while
// watching join the watch set on the fly.
type Watcher struct {
	root       string
	extensions []string
	exclude    []string

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	started bool
	closed  bool
}

// NewWatcher creates a watcher for root. The extension and exclude
// filters match the scanner's behaviour.
func NewWatcher(root string, extensions, exclude []string) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	return &Watcher{
		root:       absRoot,
		extensions: extensions,
		exclude:    exclude,
	}, nil
}

// Watch starts watching and returns a channel of events. The channel is
// closed when ctx is cancelled or the watcher is closed. Watch may be
// called once per watcher.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, errors.New("watcher closed")
	}
	if w.started {
		return nil, errors.New("watcher already started")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := addRecursive(fsw, w.root, w.exclude); err != nil {
		fsw.Close()
		return nil, err
	}

	w.fsw = fsw
	w.started = true

	events := make(chan Event)
	go w.loop(ctx, fsw, events)
	return events, nil
}

// Close stops the watcher. Idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

// addRecursive registers dir and every non-excluded subdirectory.
func addRecursive(fsw *fsnotify.Watcher, dir string, exclude []string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isExcludedDir(d.Name(), exclude) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, events chan<- Event) {
	defer close(events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handle(ctx, fsw, ev, events)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, fsw *fsnotify.Watcher, ev fsnotify.Event, events chan<- Event) {
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil || isHiddenPath(rel) {
		return
	}

	// Directories created while watching join the watch set. Their
	// contents surface as later events, not as an event themselves.
	if ev.Op.Has(fsnotify.Create) {
		if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
			if !isExcludedDir(filepath.Base(ev.Name), w.exclude) {
				if addErr := addRecursive(fsw, ev.Name, w.exclude); addErr != nil {
					logger.Warn("watch error: %v", addErr)
				}
			}
			return
		}
	}

	if !hasExtension(filepath.Base(ev.Name), w.extensions) {
		return
	}

	op := opLabel(ev.Op)
	if op == "" {
		return
	}

	select {
	case events <- Event{RelPath: filepath.ToSlash(rel), Op: op}:
	case <-ctx.Done():
	}
}

// opLabel maps an fsnotify op to an event label. Chmod-only events map to
// "" and are dropped.
func opLabel(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate
	case op.Has(fsnotify.Write):
		return OpWrite
	case op.Has(fsnotify.Remove):
		return OpRemove
	case op.Has(fsnotify.Rename):
		return OpRename
	default:
		return ""
	}
}
