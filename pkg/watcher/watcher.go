// Package watcher notifies the CLI's watch mode when a seed file changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nadhir/social-graph/pkg/logging"
)

// quietPeriod batches rapid editor saves into a single change event.
const quietPeriod = 200 * time.Millisecond

// ChangeEvent reports that the watched seed file changed.
type ChangeEvent struct {
	Path      string
	Timestamp time.Time
}

// SeedWatcher watches a single seed file for modification.
type SeedWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan ChangeEvent
}

// NewSeedWatcher creates a watcher for the given seed file.
func NewSeedWatcher(path string) (*SeedWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seed path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &SeedWatcher{
		watcher: fw,
		path:    abs,
		events:  make(chan ChangeEvent, 10),
	}, nil
}

// Start begins watching for changes until the context is cancelled.
// The containing directory is watched rather than the file itself, so
// editors that replace the file on save are still observed.
func (w *SeedWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logging.Info("watching seed file", "path", w.path)
	go w.processEvents(ctx)
	return nil
}

// processEvents filters events down to the seed file and debounces them.
func (w *SeedWatcher) processEvents(ctx context.Context) {
	flushTimer := time.NewTimer(quietPeriod)
	flushTimer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			close(w.events)
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			flushTimer.Reset(quietPeriod)

		case <-flushTimer.C:
			if pending {
				pending = false
				w.events <- ChangeEvent{Path: w.path, Timestamp: time.Now()}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("watcher error", "error", err)
		}
	}
}

// Events returns the channel of debounced change events.
func (w *SeedWatcher) Events() <-chan ChangeEvent {
	return w.events
}
