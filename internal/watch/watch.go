// Package watch reports changes to a single file using OS-native
// notifications.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Run waits after the last event before
// invoking its callback. Editors often emit several events per save.
const DefaultDebounce = 50 * time.Millisecond

// Watcher watches one file.
type Watcher struct {
	w        *fsnotify.Watcher
	target   string
	Debounce time.Duration
}

// New watches the file at path. The parent directory is watched rather
// than the file itself, so saves that replace the file via rename are seen.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &Watcher{w: w, target: abs, Debounce: DefaultDebounce}, nil
}

// Run calls onChange after each burst of writes to the file. It returns nil
// when ctx is done and an error if the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.Debounce)
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			return err
		case <-timer.C:
			onChange()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return name == w.target
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
