// Package watch reports changes to a single file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file are still observed.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ggbar"
)

// DefaultDebounce is how long Run waits for further events before calling
// the handler.
const DefaultDebounce = 100 * time.Millisecond

// Handler is called once per burst of changes to the watched file.
type Handler func(ctx context.Context) error

// File watches one path.
type File struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewFile starts watching the directory containing path.
// A zero debounce selects DefaultDebounce.
func NewFile(path string, debounce time.Duration) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}
	return &File{path: abs, debounce: debounce, watcher: w}, nil
}

// Close stops watching.
func (f *File) Close() error {
	return f.watcher.Close()
}

// Run calls h after each burst of writes, creations or renames of the file
// until ctx is done or h returns an error. Run returns nil on cancellation.
func (f *File) Run(ctx context.Context, h Handler) error {
	log := ggbar.Logger().With("path", f.path)

	var (
		timer  *time.Timer
		fireCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("watch: change", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(f.debounce)
			} else {
				timer.Reset(f.debounce)
			}
			fireCh = timer.C

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch: error", "err", err)

		case <-fireCh:
			fireCh = nil
			if err := h(ctx); err != nil {
				return err
			}
		}
	}
}
