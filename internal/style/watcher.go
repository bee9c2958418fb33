package style

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a user theme when its file, or a partial it may import,
// changes on disk.
type Watcher struct {
	mu       sync.Mutex
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
	theme    *Theme
	document *Document
	sheet    *Sheet
	onChange func(*Theme)
	done     chan struct{}
	running  bool
}

// NewWatcher creates a watcher for theme. When document is non-nil the
// theme is adopted into it and swapped in place on every reload.
func NewWatcher(theme *Theme, document *Document, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		logger:   logger,
		watcher:  fw,
		theme:    theme,
		document: document,
		done:     make(chan struct{}),
	}
	if document != nil {
		w.sheet = document.Replace("", theme.CSS)
	}
	return w, nil
}

// OnChange sets the callback invoked after a successful reload.
func (w *Watcher) OnChange(fn func(*Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching. Bundled themes have no file and are not watched.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if w.theme.Bundled || w.theme.Path == "" {
		w.mu.Unlock()
		w.logger.Debug("not watching bundled theme", "theme", w.theme.Name)
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory: editors often replace files rather than write.
	if err := w.watcher.Add(filepath.Dir(w.theme.Path)); err != nil {
		return err
	}

	go w.loop(ctx)
	w.logger.Debug("theme watcher started", "path", w.theme.Path)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".css") {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	theme := w.theme
	w.mu.Unlock()

	changed, err := theme.Reload()
	if err != nil {
		w.logger.Warn("failed to reload theme", "path", theme.Path, "error", err)
		return
	}
	if !changed {
		return
	}

	w.mu.Lock()
	if w.document != nil {
		old := ""
		if w.sheet != nil {
			old = w.sheet.Hash
			w.document.Cache().Remove(old)
		}
		w.sheet = w.document.Replace(old, theme.CSS)
	}
	callback := w.onChange
	w.mu.Unlock()

	w.logger.Info("theme reloaded", "theme", theme.Name, "path", theme.Path)
	if callback != nil {
		callback(theme)
	}
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.done)
		w.running = false
	}
	return w.watcher.Close()
}
