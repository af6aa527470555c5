package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-theft-auto/scrollview"
)

// watchConfig reloads path whenever it is written and delivers each valid
// config on the returned channel. Invalid files are logged and skipped. The
// directory is watched rather than the file so editors that replace the file
// on save keep working.
func watchConfig(ctx context.Context, path string, logger *slog.Logger) (<-chan scrollview.Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	out := make(chan scrollview.Config, 1)
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := scrollview.LoadConfig(path)
				if err != nil {
					logger.Warn("config reload failed", "path", path, "error", err)
					continue
				}
				logger.Info("config reloaded", "path", path)
				// Keep only the newest config.
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			}
		}
	}()
	return out, nil
}
