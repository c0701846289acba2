package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the stored document changes.
type Event struct {
	// Path is the on-disk location that changed.
	Path string
}

// Watch streams change events for the journal document until ctx is
// cancelled. Callers should drain the returned channel to avoid blocking the
// watcher. The channel is closed once ctx is done or the watcher encounters
// an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch base path: %w", err)
	}

	events := make(chan Event, 1)
	docPath := filepath.Join(p.basePath, DocumentKey)

	go func() {
		defer close(events)
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != docPath {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case events <- Event{Path: ev.Name}:
				default:
					// A pending event already signals a reload.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
			}
		}
	}()

	return events, nil
}
