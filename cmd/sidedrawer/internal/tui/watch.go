package tui

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/sidedrawer/cmd/sidedrawer/internal/config"
)

// Watch reloads sidedrawer.yaml in dir whenever it changes and sends a
// ConfigMsg for every reload until ctx is done. The directory is watched
// rather than the file so editors that replace the file on save still
// trigger a reload.
func Watch(ctx context.Context, dir string, send func(tea.Msg)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(filepath.Join(dir, config.FileName))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			resolved, err := config.Load(dir)
			send(ConfigMsg{Config: resolved, Err: err})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			send(ConfigMsg{Err: err})
		}
	}
}
