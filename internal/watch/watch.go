// Package watch re-runs a callback when a parameter file changes on
// disk. Editors save in bursts, so events are debounced before the
// callback fires.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches a single parameter file for writes.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	path     string
	log      *zap.SugaredLogger
	onChange func(path string)

	lastEvent time.Time
	hasEvent  bool

	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New builds a watcher for path. onChange runs on the watcher
// goroutine once writes settle.
func New(path string, log *zap.SugaredLogger, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:      fsw,
		path:     abs,
		log:      log,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start watches the file's directory and launches the event loop.
// Watching the directory instead of the file itself survives the
// rename-and-replace dance most editors do on save.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.log.Infof("watching %s for changes", w.path)

	go w.run(ctx)
	return nil
}

// Close stops the event loop and releases the watch handle.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.fsw.Close()
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watch error: %v", err)
		case <-tick.C:
			w.flush()
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.mu.Lock()
	w.lastEvent = time.Now()
	w.hasEvent = true
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	fire := w.hasEvent && time.Since(w.lastEvent) >= w.debounce
	if fire {
		w.hasEvent = false
	}
	w.mu.Unlock()

	if fire {
		w.onChange(w.path)
	}
}
