package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/logger"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to a single file.
// It watches the parent directory so that editors saving through a
// rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	return &Watcher{path: filepath.Clean(abs), debounce: DefaultDebounce}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching. The channel receives the last change of each
// burst and is closed when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.FileChange, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	out := make(chan domain.FileChange, 1)
	go w.loop(ctx, fsw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- domain.FileChange) {
	defer close(out)
	defer fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var pending *domain.FileChange

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			change, ok := w.handleFsEvent(event)
			if !ok {
				continue
			}
			logger.Debug("watch: %s %s", change.Type, change.Path)
			pending = &change
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", w.path, err)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case out <- *pending:
			case <-ctx.Done():
				return
			}
			pending = nil
		}
	}
}

// handleFsEvent maps an fsnotify event on the watched file to a change.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (domain.FileChange, bool) {
	if filepath.Clean(event.Name) != w.path {
		return domain.FileChange{}, false
	}

	change := domain.FileChange{Path: w.path}
	switch {
	case event.Has(fsnotify.Create):
		change.Type = domain.ChangeCreated
	case event.Has(fsnotify.Write):
		change.Type = domain.ChangeUpdated
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		change.Type = domain.ChangeDeleted
	default:
		return domain.FileChange{}, false
	}
	return change, true
}
