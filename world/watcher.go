package world

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the settle window applied to file change bursts
// when no override is configured.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches world definition files and reports batches of changed
// paths after a debounce window, so a burst of editor writes triggers a
// single rebuild. It watches the parent directories rather than the
// files themselves, which survives the rename-and-replace dance editors
// do on save.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration
	watched  map[string]struct{}
	pending  map[string]struct{}
	events   chan []string
}

// NewWatcher creates a watcher for the given files. A non-positive
// debounce falls back to DefaultDebounce.
func NewWatcher(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		watched:  make(map[string]struct{}),
		pending:  make(map[string]struct{}),
		events:   make(chan []string, 8),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve path %q: %w", path, err)
		}
		w.watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Events delivers batches of changed file paths, sorted. The channel is
// closed when the watch loop exits.
func (w *Watcher) Events() <-chan []string {
	return w.events
}

// Start runs the watch loop in a goroutine until ctx is canceled or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Stop closes the underlying filesystem watcher, which ends the watch
// loop and closes the events channel.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.record(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", "error", err)
		case <-ticker.C:
			w.flush()
		}
	}
}

// record marks a watched file as pending if the event touches it.
func (w *Watcher) record(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}
	if _, ok := w.watched[abs]; !ok {
		return
	}
	w.pending[abs] = struct{}{}
}

// flush emits the pending batch. If the consumer is behind, the batch
// is held for the next tick instead of being dropped.
func (w *Watcher) flush() {
	if len(w.pending) == 0 {
		return
	}
	batch := make([]string, 0, len(w.pending))
	for path := range w.pending {
		batch = append(batch, path)
	}
	sort.Strings(batch)

	select {
	case w.events <- batch:
		w.pending = make(map[string]struct{})
	default:
		w.logger.Warn("Change batch deferred", "files", len(batch))
	}
}
