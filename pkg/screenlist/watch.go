package screenlist

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a screen list file when it changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
}

// WatcherOpt configures a [Watcher].
type WatcherOpt func(*Watcher)

// WithDebounce sets how long to wait for further events before reloading.
func WithDebounce(d time.Duration) WatcherOpt {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher watches path. The parent directory is watched, so that
// editors which replace the file on save are handled.
func NewWatcher(path string, opts ...WatcherOpt) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("get absolute path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	err = fsw.Add(filepath.Dir(abs))
	if err != nil {
		_ = fsw.Close()

		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch calls fn with the reloaded document after every change, until ctx
// is done. Load errors are passed to fn rather than stopping the watch.
func (w *Watcher) Watch(ctx context.Context, fn func(*Document, error)) error {
	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			slog.Debug("screen list changed",
				slog.String("path", w.path),
				slog.String("op", event.Op.String()),
			)

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			timerCh = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watch screen list", slog.Any("error", err))

		case <-timerCh:
			timerCh = nil

			fn(Load(w.path))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close() //nolint:wrapcheck // Return the original error.
}
