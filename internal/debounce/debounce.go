// Package debounce implements delay-and-fire timers that coalesce bursts of
// triggers into a single action.
//
// A Debouncer never drops the final value: when its scope changes (the
// focused note switches, the app tears down) the pending action must be
// flushed with Flush rather than cancelled. Stop exists for the rare case
// where discarding is the correct behavior, such as abandoning a draft for a
// note that was just deleted.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces triggers: each Trigger supersedes the previous pending
// fire and re-arms the timer. Safe for use from multiple goroutines, though
// dayora only ever drives it from the UI event loop and its own timer.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// New returns a Debouncer that fires delay after the most recent Trigger.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the debounce delay, cancelling any
// previously scheduled function.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Flush runs the pending function immediately, if any. The scheduled timer
// fire becomes a no-op.
func (d *Debouncer) Flush() {
	d.fire()
}

// Stop discards the pending function without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Pending reports whether a fire is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
