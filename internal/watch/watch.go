// Package watch triggers a callback when workspace files change. Events
// are debounced so a burst of editor saves produces a single trigger.
package watch

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeFunc is invoked with the settled batch of changed paths.
type ChangeFunc func(ctx context.Context, paths []string)

// Options configures a Watcher.
type Options struct {
	// Dirs are the directories to watch (non-recursive).
	Dirs []string

	// Suffixes are the file suffixes that trigger the callback.
	// Events for other files are ignored.
	Suffixes []string

	// Debounce is the quiet period a path must settle for before the
	// callback fires. Zero selects a 500ms default.
	Debounce time.Duration
}

// Stats tracks watcher activity for tests and debugging.
type Stats struct {
	Created   int
	Modified  int
	Deleted   int
	Triggered int
	Errors    int
}

// Watcher watches directories and fires a debounced callback.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	logger      *zap.Logger
	opts        Options
	onChange    ChangeFunc
	debounceMap map[string]time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	stats       Stats
}

// New creates a Watcher. Start must be called to begin watching.
func New(opts Options, logger *zap.Logger, onChange ChangeFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{
		watcher:     fsw,
		logger:      logger,
		opts:        opts,
		onChange:    onChange,
		debounceMap: make(map[string]time.Time),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. This method is non-blocking; it starts the event
// loop in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.mu.Unlock()

	for _, dir := range w.opts.Dirs {
		if err := w.watcher.Add(dir); err != nil {
			// The directory may appear later; keep watching the rest.
			w.logger.Warn("watch: failed to add directory",
				zap.String("dir", dir), zap.Error(err))
			continue
		}
		w.logger.Debug("watch: watching directory", zap.String("dir", dir))
	}

	go w.run(ctx)

	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("watch: error closing watcher", zap.Error(err))
	}
}

// IsWatching returns true if the watcher is currently running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// GetStats returns the current watcher statistics.
func (w *Watcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// run is the main event loop for the watcher.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Sweep timer for settled debounce entries
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch: context cancelled")
			return

		case <-w.stopCh:
			w.logger.Debug("watch: stop signal received")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch: watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.processDebounced(ctx)
		}
	}
}

// handleEvent records a single filesystem event for debounced processing.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !w.matchesSuffix(event.Name) {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return // Ignore chmod, etc.
	}

	w.logger.Debug("watch: event",
		zap.String("op", eventType), zap.String("path", event.Name))

	w.mu.Lock()
	switch eventType {
	case "create":
		w.stats.Created++
	case "modify":
		w.stats.Modified++
	case "delete", "rename":
		w.stats.Deleted++
	}
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

// processDebounced fires the callback for paths that have settled past
// the debounce window. All settled paths are delivered in one batch so a
// multi-file save triggers a single rebuild.
func (w *Watcher) processDebounced(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.opts.Debounce {
			settled = append(settled, path)
			delete(w.debounceMap, path)
		}
	}
	if len(settled) > 0 {
		w.stats.Triggered++
	}
	w.mu.Unlock()

	if len(settled) == 0 {
		return
	}

	sort.Strings(settled)
	w.onChange(ctx, settled)
}

// matchesSuffix reports whether the path carries one of the watched suffixes.
func (w *Watcher) matchesSuffix(path string) bool {
	for _, suffix := range w.opts.Suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
