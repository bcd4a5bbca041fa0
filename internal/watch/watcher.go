// Package watch re-runs a callback whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounce is the quiet period after the last change before the
// callback runs.
const DefaultDebounce = 200 * time.Millisecond

// Config holds watcher configuration.
type Config struct {
	// Path is the file to watch.
	Path string
	// Debounce is the quiet period before a change is delivered (default 200ms)
	Debounce time.Duration
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Watcher watches a single file.
type Watcher struct {
	path     string
	dir      string
	debounce time.Duration
	logger   *slog.Logger
}

// New creates a watcher for cfg.Path.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch path is required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Run calls onChange after every debounced change to the file and blocks
// until ctx is cancelled. Calls never overlap. Errors from onChange are
// logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	// Watch the directory so editors that replace the file are still seen.
	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	changes := make(chan struct{}, 1)
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return w.watchEvents(egctx, fsw, changes)
	})

	eg.Go(func() error {
		for {
			select {
			case <-egctx.Done():
				return nil
			case <-changes:
				w.logger.Debug("file changed, rebuilding", "file", w.path)
				if err := onChange(egctx); err != nil {
					w.logger.Error("rebuild failed", "file", w.path, "error", err)
				}
			}
		}
	})

	return eg.Wait()
}

func (w *Watcher) watchEvents(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- struct{}) error {
	// Debounce timer
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				select {
				case changes <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}
