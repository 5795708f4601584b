package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"aporo/pkg/logging"
)

// reloadDelay coalesces the burst of events editors emit for one save
const reloadDelay = 250 * time.Millisecond

// WatchCatalog reloads the catalog file whenever it changes, until ctx is cancelled.
// A file that no longer validates is logged and the previous catalog keeps serving.
func (s *Service) WatchCatalog(ctx context.Context) error {
	path := s.config.CatalogFile
	if path == "" {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating catalog watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory so atomic renames are seen
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	reload := func() {
		if err := s.ReloadCatalog(); err != nil {
			logging.Logger.Warn().Err(err).Str("file", path).Msg("Catalog reload rejected, keeping previous catalog")
		}
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	target := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDelay, reload)
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn().Err(err).Str("file", path).Msg("Catalog watcher error")
		}
	}
}
