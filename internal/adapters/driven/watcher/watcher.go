// Package watcher notifies callers when a record file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/custodia-labs/arbor/internal/core/ports/driven"
	"github.com/custodia-labs/arbor/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher is an fsnotify-backed implementation of driven.FileWatcher.
//
// It watches the file's directory rather than the file itself so that
// editors which save by writing a new file and renaming it over the old one
// keep triggering notifications.
type Watcher struct {
	debounce time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long to wait for further events before notifying.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a watcher.
func New(opts ...Option) *Watcher {
	w := &Watcher{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching path. The returned channel receives a value after
// each burst of changes and is closed when ctx is cancelled.
// Notifications are coalesced: a slow reader sees at most one pending value.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	logger.Debug("Watching %s", abs)

	changes := make(chan struct{}, 1)
	go w.run(ctx, fsw, abs, changes)
	return changes, nil
}

// run is the event loop for a single watch.
func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, target string, changes chan<- struct{}) {
	defer close(changes)
	defer fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Stopped watching %s", target)
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(event, target) {
				continue
			}
			logger.L().Debug("file event",
				zap.Stringer("op", event.Op),
				zap.String("path", event.Name))
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.L().Warn("watcher error", zap.String("path", target), zap.Error(err))

		case <-timer.C:
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}

// relevant reports whether event changes the content of target.
func relevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}
