package catalog

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher reloads the catalog when its seed file changes on disk.
// Events are debounced because editors fire several writes per save.
type Watcher struct {
	catalog  *Catalog
	watcher  *fsnotify.Watcher
	logger   *logrus.Logger
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewWatcher(catalog *Catalog, logger *logrus.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: many editors replace the
	// file on save, which drops a file-level watch.
	if err := fsw.Add(filepath.Dir(catalog.path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		catalog:  catalog,
		watcher:  fsw,
		logger:   logger,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine. It is non-blocking.
func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.catalog.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			if err := w.catalog.Reload(); err != nil {
				w.logger.WithError(err).Error("Failed to reload catalog after seed change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("Seed watcher error")

		case <-w.stopCh:
			return
		}
	}
}

// Stop ends the watch and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
}
