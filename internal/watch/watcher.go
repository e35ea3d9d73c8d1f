package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event conveys a change to the watched file or a watcher error.
type Event struct {
	Path string
	Err  error
}

// Watcher observes a single file for changes and publishes events. The
// parent directory is watched rather than the file itself so editors that
// replace the file via rename keep triggering events.
type Watcher struct {
	path     string
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	fs     *fsnotify.Watcher
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching the given file. Change bursts closer together
// than debounce are coalesced into a single event.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
		fs:       fs,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		w.fs.Close()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of file change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The run goroutine exits after its current event;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the run goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	throttle := newThrottle(w.debounce)

	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case fsEvent, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.matches(fsEvent) {
				continue
			}
			throttle.wait()
			drain(w.fs.Events, w.path)
			if !emit(Event{Path: w.path}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !emit(Event{Path: w.path, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) matches(evt fsnotify.Event) bool {
	if evt.Name != w.path {
		return false
	}
	return evt.Op.Has(fsnotify.Write) || evt.Op.Has(fsnotify.Create) || evt.Op.Has(fsnotify.Rename)
}

// drain discards queued events for the same file so a burst of writes
// collapses into one reload.
func drain(events chan fsnotify.Event, path string) {
	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return
			}
			if evt.Name != path {
				return
			}
		default:
			return
		}
	}
}
