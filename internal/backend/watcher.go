package backend

import (
	"context"
	"os"
	"sync"
	"time"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindMarkup Kind = iota
)

// Event conveys updated markup or an error from a poll.
type Event struct {
	Kind Kind
	Path string
	Data []byte
	Err  error
}

// Watcher polls a markup file at a fixed interval and publishes an event each
// time its size or modification time changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	lastMod  time.Time
	lastSize int64
	lastErr  bool
}

// NewWatcher starts polling path every interval. The file state at start-up
// is the baseline and does not produce an event.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
		w.lastSize = info.Size()
	}

	w.wg.Add(1)
	go w.poll(newThrottle(250 * time.Millisecond))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current check; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(throttle *throttle) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !throttle.wait(w.ctx) {
				return
			}
			evt, changed := w.check()
			if !changed {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}

// check stats the file and reads it when it changed. Errors are reported once
// until the file becomes readable again.
func (w *Watcher) check() (Event, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		if w.lastErr {
			return Event{}, false
		}
		w.lastErr = true
		return Event{Kind: KindMarkup, Path: w.path, Err: err}, true
	}
	if !w.lastErr && info.ModTime().Equal(w.lastMod) && info.Size() == w.lastSize {
		return Event{}, false
	}
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.lastErr = true
		return Event{Kind: KindMarkup, Path: w.path, Err: err}, true
	}
	w.lastErr = false
	w.lastMod = info.ModTime()
	w.lastSize = info.Size()
	return Event{Kind: KindMarkup, Path: w.path, Data: data}, true
}
