package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"radialmenu/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long the watcher waits after the last write before
// reloading, so editors that write in several steps trigger one reload.
const DefaultSettle = 200 * time.Millisecond

// Watcher reloads a Store when its document changes on disk and announces
// each successful reload on Changes.
type Watcher struct {
	store     *Store
	settle    time.Duration
	fsWatcher *fsnotify.Watcher

	changes  chan *Config
	stopChan chan struct{}
	done     chan struct{}

	mutex   sync.Mutex
	running bool
}

// NewWatcher watches the directory of the store's document. Watching the
// directory rather than the file survives editors that replace the file.
func NewWatcher(store *Store, settle time.Duration) (*Watcher, error) {
	fsWatcher, err := watchDir(store.Path())
	if err != nil {
		return nil, err
	}
	if settle <= 0 {
		settle = DefaultSettle
	}

	return &Watcher{
		store:     store,
		settle:    settle,
		fsWatcher: fsWatcher,
		changes:   make(chan *Config, 1),
	}, nil
}

func watchDir(path string) (*fsnotify.Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return fsWatcher, nil
}

// Changes delivers the new snapshot after each reload. Only the latest
// pending snapshot is kept. The channel closes when the watcher stops, and
// each Start opens a fresh one, so call Changes after Start.
func (w *Watcher) Changes() <-chan *Config {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.changes
}

// Start runs the event loop. A stopped watcher can be started again.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	if w.fsWatcher == nil {
		fsWatcher, err := watchDir(w.store.Path())
		if err != nil {
			return err
		}
		w.fsWatcher = fsWatcher
		w.changes = make(chan *Config, 1)
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop(w.fsWatcher, w.changes, w.stopChan, w.done)
	log.LogWithFields(log.F("path", w.store.Path())).Info("Watching configuration")
	return nil
}

func (w *Watcher) loop(fsWatcher *fsnotify.Watcher, changes chan *Config, stop, done chan struct{}) {
	defer close(done)
	defer close(changes)

	target := filepath.Clean(w.store.Path())
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.settle)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := w.store.Reload()
			if err != nil {
				continue
			}
			publish(changes, cfg)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// publish replaces any undelivered snapshot with cfg.
func publish(changes chan *Config, cfg *Config) {
	for {
		select {
		case changes <- cfg:
			return
		default:
		}
		select {
		case <-changes:
		default:
		}
	}
}

// Stop halts the watcher and waits for its loop to exit.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	close(w.stopChan)
	<-w.done
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.fsWatcher = nil
	w.running = false
	log.Info("Configuration watcher stopped.")
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.running
}
