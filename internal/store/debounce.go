package store

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of triggers into a single call to fn after a
// quiet window with no new triggers. Each Trigger restarts the window; it
// does not accumulate.
type Debouncer struct {
	window time.Duration
	fn     func()

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
}

// NewDebouncer returns a debouncer that invokes fn after window of quiet.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger schedules (or reschedules) the debounced call.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.mu.Unlock()

	d.fn()
}

// Flush runs the pending call immediately, if any. Used at process exit so
// a crash-free shutdown never loses the tail of a burst.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.fn()
}

// Pending reports whether a write is scheduled but not yet performed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
