// Package watcher handles file system watching for the daemon.
package watcher

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file system event.
type EventType int

// Event types for status directory changes.
const (
	EventSignalChanged EventType = iota
	EventSignalRemoved
	EventHintChanged
)

// Event represents a change to the signal or hint file.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches the status directory for signal and hint updates.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}

	statusDir  string
	signalFile string
	hintFile   string

	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher for the given signal and hint file paths. Both
// must live in the same directory.
func New(signalPath, hintPath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 100),
		done:       make(chan struct{}),
		statusDir:  filepath.Dir(signalPath),
		signalFile: filepath.Base(signalPath),
		hintFile:   filepath.Base(hintPath),
		debounce:   make(map[string]*time.Timer),
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start begins watching the status directory. The directory is created
// if it does not exist yet so the watch can be registered.
func (w *Watcher) Start() error {
	if err := os.MkdirAll(w.statusDir, 0o755); err != nil {
		return err
	}
	if err := w.fsWatcher.Add(w.statusDir); err != nil {
		return err
	}

	go w.processEvents()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

// processEvents processes file system events.
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
			log.Printf("[watcher] error: %v", err)
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	filename := filepath.Base(event.Name)
	if filename != w.signalFile && filename != w.hintFile {
		// Temp files from atomic writes show up here too. Ignore them;
		// the rename onto the real name produces its own event.
		return
	}

	if event.Op&fsnotify.Remove != 0 {
		if filename == w.signalFile {
			w.emit(Event{Type: EventSignalRemoved, Path: event.Name})
		}
		return
	}

	// Accept write, create, and rename events. Rename is critical:
	// atomic writes (write tmp → rename to target) produce Rename
	// events on the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.debounceEvent(event.Name, func() {
		eventType := EventSignalChanged
		if filename == w.hintFile {
			eventType = EventHintChanged
		}
		w.emit(Event{Type: eventType, Path: event.Name})
	})
}

// emit delivers an event without blocking a slow consumer.
func (w *Watcher) emit(e Event) {
	select {
	case w.eventsChan <- e:
	case <-w.done:
	}
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

// IsTempFile reports whether a status directory entry is a leftover from
// an interrupted atomic write.
func IsTempFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".") && strings.Contains(base, ".tmp-")
}
