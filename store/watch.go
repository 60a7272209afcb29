package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go-game-library/utils/fileio"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 150 * time.Millisecond

// Watch reloads the store when its file is changed by another program and
// calls onChange after each successful reload. It returns once the watcher
// is running; watching stops when ctx is done.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: editors and our own atomic writes replace the file.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		fileio.Close(w, s.logger.Warnf, "Store: failed to close watcher")
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.path), err)
	}

	go func() {
		defer fileio.Close(w, s.logger.Warnf, "Store: failed to close watcher")

		var (
			mu    sync.Mutex
			timer *time.Timer
		)
		defer func() {
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warnf("Store: watcher error: %v", err)
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					if ctx.Err() != nil {
						return
					}
					s.handleExternalChange(onChange)
				})
				mu.Unlock()
			}
		}
	}()

	return nil
}

func (s *Store) handleExternalChange(onChange func()) {
	changed, err := s.Reload()
	if err != nil {
		s.logger.Warnf("Store: ignoring external change to %s: %v", s.path, err)
		return
	}
	if !changed {
		return
	}
	s.logger.Infof("Store: reloaded %s after external change", s.path)
	if onChange != nil {
		onChange()
	}
}
