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

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

func newTestWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	return w
}

func receive(t *testing.T, changes <-chan domain.FileChange) domain.FileChange {
	t.Helper()
	select {
	case change, ok := <-changes:
		require.True(t, ok, "channel closed")
		return change
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for change")
		return domain.FileChange{}
	}
}

func TestWatcher_ReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	w := newTestWatcher(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "x"}`), 0644))

	change := receive(t, changes)
	assert.Equal(t, w.Path(), change.Path)
	assert.Contains(t, []domain.ChangeType{domain.ChangeUpdated, domain.ChangeCreated}, change.Type)
}

func TestWatcher_ReportsCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "later.json")

	w := newTestWatcher(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	change := receive(t, changes)
	assert.Equal(t, w.Path(), change.Path)
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	w := newTestWatcher(t, path)
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := w.Watch(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := newTestWatcher(t, filepath.Join(t.TempDir(), "missing", "doc.json"))

	changes, err := w.Watch(context.Background())
	assert.Error(t, err)
	assert.Nil(t, changes)
}

func TestHandleFsEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	w := newTestWatcher(t, path)

	tests := []struct {
		name     string
		event    fsnotify.Event
		wantOK   bool
		wantType domain.ChangeType
	}{
		{name: "create", event: fsnotify.Event{Name: path, Op: fsnotify.Create}, wantOK: true, wantType: domain.ChangeCreated},
		{name: "write", event: fsnotify.Event{Name: path, Op: fsnotify.Write}, wantOK: true, wantType: domain.ChangeUpdated},
		{name: "remove", event: fsnotify.Event{Name: path, Op: fsnotify.Remove}, wantOK: true, wantType: domain.ChangeDeleted},
		{name: "rename", event: fsnotify.Event{Name: path, Op: fsnotify.Rename}, wantOK: true, wantType: domain.ChangeDeleted},
		{name: "chmod", event: fsnotify.Event{Name: path, Op: fsnotify.Chmod}},
		{name: "other file", event: fsnotify.Event{Name: filepath.Join(dir, "x.json"), Op: fsnotify.Write}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, ok := w.handleFsEvent(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantType, change.Type)
				assert.Equal(t, w.Path(), change.Path)
			}
		})
	}
}
