package vitals

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"mortalidad.saluddatos.org/internal/metrics"
)

// reloadDebounce coalesces the burst of fsnotify events a spreadsheet export
// produces into a single reload.
const reloadDebounce = 500 * time.Millisecond

var watchedFiles = map[string]bool{
	DeathsFileName: true,
	PlacesFileName: true,
	CausesFileName: true,
}

// startWatcher watches the data directory and reloads the dataset when one
// of the input files changes.
func (manager *Manager) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(manager.config.DataDir); err != nil {
		_ = watcher.Close()
		return err
	}

	manager.wg.Add(1)
	go manager.watchDataDir(watcher)

	return nil
}

func (manager *Manager) watchDataDir(watcher *fsnotify.Watcher) {
	defer manager.wg.Done()
	defer watcher.Close() // nolint:errcheck

	logger := manager.config.logger()

	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watchedFiles[filepath.Base(event.Name)] {
				continue
			}

			if debounce == nil {
				debounce = time.NewTimer(reloadDebounce)
			} else {
				debounce.Reset(reloadDebounce)
			}
			pending = debounce.C

		case <-pending:
			pending = nil

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			err := manager.Reload(ctx)
			cancel()

			if err != nil {
				logger.Error("dataset reload failed", "error", err)
				continue
			}

			metrics.RecordReload()
			logger.Info("dataset reloaded after file change")

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("dataset watcher error", "error", err)

		case <-manager.shutdownChan:
			if debounce != nil {
				debounce.Stop()
			}
			return
		}
	}
}
