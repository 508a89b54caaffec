package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"chaoswatch.karkala.dev/internal/log"
)

// Watcher reloads settings when the config file changes on disk and
// delivers the result on its channel. Invalid edits are logged and skipped
// so a half-saved file never clobbers a running face.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	updates chan Settings
}

// NewWatcher starts watching the directory containing path. Watching the
// directory rather than the file survives editors that replace-on-save.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{
		path:    path,
		fw:      fw,
		updates: make(chan Settings, 1),
	}, nil
}

// Updates returns the channel on which reloaded settings arrive.
func (w *Watcher) Updates() <-chan Settings { return w.updates }

// Run processes fs events until ctx is cancelled. The updates channel is
// closed on return so consumers ranging over it terminate.
func (w *Watcher) Run(ctx context.Context) {
	logger := log.WithComponent("config")
	defer w.fw.Close()
	defer close(w.updates)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s, err := Load(w.path)
			if err != nil {
				logger.Warn().Err(err).Str("path", w.path).Msg("config reload rejected")
				continue
			}
			logger.Info().Str("path", w.path).Msg("config reloaded")
			select {
			case w.updates <- s:
			default:
				// Drop if the UI has not consumed the previous reload yet.
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("fs watcher error")
		}
	}
}
