// Package watcher triggers a reindex when a search-path directory changes.
package watcher

import (
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"pathrun/internal/domain"
	"pathrun/internal/eventbus"
)

// DirWatcher watches the top level of every search-path directory and
// coalesces change bursts into one callback
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	bus      eventbus.EventBus
	paths    domain.SearchPath
	onChange func(domain.SearchPath)
	done     chan struct{}
	wg       sync.WaitGroup

	mu            sync.Mutex
	debounceDelay time.Duration
	timer         *time.Timer
	closed        bool
}

// New starts watching paths. Directories that cannot be watched are
// skipped. onChange receives paths after each debounced burst of changes.
func New(paths domain.SearchPath, debounce time.Duration, bus eventbus.EventBus, onChange func(domain.SearchPath)) (*DirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dw := &DirWatcher{
		watcher:       w,
		bus:           bus,
		paths:         paths,
		onChange:      onChange,
		done:          make(chan struct{}),
		debounceDelay: debounce,
	}

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			log.Printf("Not watching %s: %v", p, err)
		}
	}

	dw.wg.Add(1)
	go dw.processEvents()

	return dw, nil
}

// Watched returns the directories currently registered with the OS
func (dw *DirWatcher) Watched() []string {
	return dw.watcher.WatchList()
}

// processEvents turns fsnotify events into debounced change notifications
func (dw *DirWatcher) processEvents() {
	defer dw.wg.Done()

	for {
		select {
		case <-dw.done:
			return
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Chmod) {
				dw.changed(event.Name)
			}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (dw *DirWatcher) changed(name string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.closed {
		return
	}
	if dw.bus != nil {
		dw.bus.Publish(eventbus.PathChangedEvent{Dir: name})
	}
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.timer = time.AfterFunc(dw.debounceDelay, dw.fire)
}

func (dw *DirWatcher) fire() {
	dw.mu.Lock()
	closed := dw.closed
	dw.timer = nil
	dw.mu.Unlock()

	if !closed {
		dw.onChange(dw.paths)
	}
}

// Close stops watching; pending notifications are dropped
func (dw *DirWatcher) Close() error {
	dw.mu.Lock()
	if dw.closed {
		dw.mu.Unlock()
		return nil
	}
	dw.closed = true
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.mu.Unlock()

	close(dw.done)
	err := dw.watcher.Close()
	dw.wg.Wait()
	return err
}
