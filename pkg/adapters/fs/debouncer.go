package fs

import (
	"sync"
	"time"

	"github.com/aretw0/outline/pkg/core"
)

// debouncer coalesces bursts of events for the same document: only the
// last event seen within the window is delivered.
type debouncer struct {
	window  time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]core.Event
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]core.Event),
	}
}

func (d *debouncer) add(e core.Event, deliver func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[e.ID] = e
	if t, ok := d.timers[e.ID]; ok {
		if t.Stop() {
			t.Reset(d.window)
			return
		}
		// Timer already fired; its callback owns the wg slot.
	}

	d.wg.Add(1)
	d.timers[e.ID] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		ev, ok := d.pending[e.ID]
		delete(d.pending, e.ID)
		delete(d.timers, e.ID)
		stopped := d.stopped
		d.mu.Unlock()

		if ok && !stopped {
			deliver(ev)
		}
	})
}

// stopAndWait rejects new events and waits up to timeout for in-flight deliveries.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for id, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
			delete(d.timers, id)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
