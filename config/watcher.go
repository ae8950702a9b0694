package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration when its file changes on disk.
type Watcher struct {
	fw   *fsnotify.Watcher
	out  chan *Config
	done chan struct{}
	path string
}

// Watch starts watching a config file. The containing directory is watched
// because editors typically replace files on save.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		fw:   fw,
		out:  make(chan *Config, 1),
		done: make(chan struct{}),
		path: abs,
	}
	go w.run()
	return w, nil
}

// Updates delivers freshly loaded configurations. Only the newest pending
// update is kept when the receiver lags.
func (w *Watcher) Updates() <-chan *Config {
	return w.out
}

// Close stops the watcher and closes the updates channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) run() {
	defer close(w.out)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("config: reload %s: %v", w.path, err)
				continue
			}
			// Drop the stale pending update, keep the newest.
			select {
			case <-w.out:
			default:
			}
			select {
			case w.out <- cfg:
			case <-w.done:
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch: %v", err)
		}
	}
}
