// Package watcher reports changes to the settings file.
package watcher

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventSettingsChanged EventType = iota
	EventSettingsRemoved
)

// DefaultDebounce is how long a path must stay quiet before an event fires.
const DefaultDebounce = 100 * time.Millisecond

// Event represents a file system change event.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches a single file by watching its parent directory. Watching
// the directory survives editors and SaveYAML replacing the file by rename.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once

	debounce   time.Duration
	timer      *time.Timer
	lastOp     fsnotify.Op
	debounceMu sync.Mutex
}

// New creates a watcher for the file at path.
func New(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       filepath.Clean(path),
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		debounce:   DefaultDebounce,
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Done is closed once Stop has been called. Events is never closed, so
// consumers select on Done to exit.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Start begins watching. The parent directory must exist.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	log.Printf("[watcher] Watching %s", w.path)
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] Watcher error: %v", err)
		}
	}
}

// handleEvent filters events down to the watched file and debounces them.
// Rename and Create matter as much as Write: atomic saves replace the file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	w.lastOp = event.Op
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

// fire emits the debounced event. The file's existence decides between
// changed and removed, since a rename-over shows up as Rename on some
// platforms.
func (w *Watcher) fire() {
	w.debounceMu.Lock()
	op := w.lastOp
	w.timer = nil
	w.debounceMu.Unlock()

	typ := EventSettingsChanged
	if !fileExists(w.path) {
		typ = EventSettingsRemoved
	}
	log.Printf("[watcher] debounce fired: %s (op=%s)", w.path, op)

	select {
	case w.eventsChan <- Event{Type: typ, Path: w.path}:
	case <-w.done:
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
