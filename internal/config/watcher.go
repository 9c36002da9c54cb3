package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk and delivers the
// fresh config over a channel. The parent directory is watched rather than
// the file itself so editors that replace-on-save keep working.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	reloads chan *Config
	logger  *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// Watch starts watching the config file at path.
func Watch(path string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		path:    path,
		reloads: make(chan *Config, 1),
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Reloads returns the channel of freshly loaded configs.
func (w *Watcher) Reloads() <-chan *Config {
	return w.reloads
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFrom(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "err", err)
				continue
			}
			// Replace any pending reload with the latest one.
			select {
			case <-w.reloads:
			default:
			}
			select {
			case w.reloads <- cfg:
			case <-w.done:
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "err", err)
		}
	}
}
