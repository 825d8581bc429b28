package bleve

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
	"github.com/sifria-labs/mafteah-cli/internal/logger"
)

// Reloader serves searches from an engine and swaps in a fresh one when
// the index directory is replaced by a rebuild.
//
// Long-running frontends search through a Reloader so a rebuild in
// another process becomes visible without a restart. Swaps wait for
// in-flight searches to finish.
type Reloader struct {
	mu        sync.RWMutex
	path      string
	engine    *Engine
	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// NewReloader opens the index at path and watches its parent directory
// for rebuilds.
func NewReloader(path string) (*Reloader, error) {
	path = filepath.Clean(path)
	engine, err := Open(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = engine.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		_ = engine.Close()
		return nil, err
	}

	r := &Reloader{
		path:    path,
		engine:  engine,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go r.watch()
	return r, nil
}

// watch reopens the engine when the index path reappears. A finished
// build renames its working directory onto the index path, which
// arrives as a create event.
func (r *Reloader) watch() {
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != r.path {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				r.reload()
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("index watch error", "err", err)
		case <-r.done:
			return
		}
	}
}

func (r *Reloader) reload() {
	fresh, err := Open(r.path)
	if err != nil {
		logger.Warn("index reload failed", "path", r.path, "err", err)
		return
	}

	r.mu.Lock()
	old := r.engine
	r.engine = fresh
	r.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	logger.Info("index reloaded", "path", r.path)
}

// Execute runs a query against the current engine.
func (r *Reloader) Execute(ctx context.Context, q domain.Query, limit int) (*domain.IndexResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.engine == nil {
		return nil, domain.ErrIndexClosed
	}
	return r.engine.Execute(ctx, q, limit)
}

// DocCount reports the document count of the current engine.
func (r *Reloader) DocCount() (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.engine == nil {
		return 0, domain.ErrIndexClosed
	}
	return r.engine.DocCount()
}

// Close stops watching and closes the current engine.
func (r *Reloader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.done)
		_ = r.watcher.Close()

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.engine != nil {
			err = r.engine.Close()
			r.engine = nil
		}
	})
	return err
}

var _ driven.SearchIndex = (*Reloader)(nil)
