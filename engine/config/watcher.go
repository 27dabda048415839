package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/orbis/engine/core"
)

// Watcher reloads a configuration file whenever it is written or replaced
// and publishes the parsed result on Changes. Files that fail to parse are
// logged and reported on Errors; the last good configuration stays in effect.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher

	changes chan *Config
	errors  chan error
	done    chan struct{}

	mutex    sync.Mutex
	isClosed bool
}

// NewWatcher watches the directory holding path, so editors that replace the
// file through a rename are still picked up.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		changes:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	go w.start()
	return w, nil
}

func (w *Watcher) Path() string { return w.path }

// Changes delivers each successfully reloaded configuration. It is closed
// once the watcher is closed.
func (w *Watcher) Changes() <-chan *Config { return w.changes }

// Errors delivers reload and watch failures. It is closed once the watcher
// is closed.
func (w *Watcher) Errors() <-chan error { return w.errors }

func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("config watcher already closed")
	}
	w.isClosed = true
	close(w.done)
	return nil
}

func (w *Watcher) start() {
	defer func() {
		w.fsnotify.Close()
		close(w.changes)
		close(w.errors)
	}()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if !e.Has(fsnotify.Create) && !e.Has(fsnotify.Write) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogError("config reload failed: %s", err)
				w.publishError(err)
				continue
			}
			core.LogInfo("config reloaded from %s", w.path)
			w.publish(cfg)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			w.publishError(err)

		case <-w.done:
			return
		}
	}
}

// publish replaces any configuration the consumer has not picked up yet.
func (w *Watcher) publish(cfg *Config) {
	for {
		select {
		case w.changes <- cfg:
			return
		case <-w.done:
			return
		default:
			select {
			case <-w.changes:
			default:
			}
		}
	}
}

func (w *Watcher) publishError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
