package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Config
	done    chan struct{}
}

// NewWatcher starts watching configPath. The parent directory is watched so
// editors that replace the file through a rename are picked up as well.
func NewWatcher(configPath string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(configPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", configPath, err)
	}

	w := &Watcher{
		path:    filepath.Clean(configPath),
		watcher: fw,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers freshly loaded configs. Only the latest one is kept when
// the reader falls behind.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops the watcher and closes the updates channel.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.updates)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadConfig(w.path)
			if err != nil {
				log.Warnf("Config reload failed for %s: %v", w.path, err)
				continue
			}
			log.Debugf("Config reloaded from %s", w.path)
			w.publish(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Config watcher error: %v", err)
		}
	}
}

func (w *Watcher) publish(cfg *Config) {
	select {
	case w.updates <- cfg:
		return
	default:
	}
	// drop the stale pending config
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
