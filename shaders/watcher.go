package shaders

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to WGSL files in a directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	changed atomic.Bool
	done    chan struct{}
}

func NewWatcher(dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}

	w := &Watcher{
		watcher: watcher,
		done:    make(chan struct{}),
	}

	go w.run()

	slog.Info("Watching shaders", slog.String("dir", dir))

	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Ext(event.Name) != ".wgsl" {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("Shader changed", slog.String("file", event.Name))
				w.changed.Store(true)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			slog.Warn("Watching shaders failed", slog.Any("err", err))
		}
	}
}

// Changed returns true if a shader changed since the previous call.
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
