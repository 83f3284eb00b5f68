package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// watchFiles calls onChange after any of paths is written or replaced, until ctx is done.
// Parent directories are watched so editors that save by rename are noticed.
func watchFiles(ctx context.Context, paths []string, onChange func()) error {
	logger := loggerFromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	logger.Info("watching for changes", "files", len(targets))

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debug("change detected", "file", event.Name, "op", event.Op)
				debounce = time.After(watchDebounce)
			}
		case <-debounce:
			debounce = nil
			onChange()
		}
	}
}
