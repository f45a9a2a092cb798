package storage

import (
	"time"

	"dayora/internal/debounce"
	"dayora/internal/store"
)

// SaveDelay coalesces bursts of state changes (typing, mostly) into one
// storage write.
const SaveDelay = 300 * time.Millisecond

// Scheduler debounces writes from the store to the gateway. Each state
// change arms the timer; only the last request within the window results in
// an actual save. The snapshot is taken when the timer fires, so the write
// always carries the latest state.
type Scheduler struct {
	db       *DB
	snapshot func() *store.AppState
	timer    *debounce.Debouncer
}

// NewScheduler wires a store snapshot source to the gateway. A zero delay
// falls back to SaveDelay.
func NewScheduler(db *DB, snapshot func() *store.AppState, delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = SaveDelay
	}
	return &Scheduler{db: db, snapshot: snapshot, timer: debounce.New(delay)}
}

// Arm (re)schedules a save. Meant to be the store's change hook.
func (s *Scheduler) Arm() {
	s.timer.Trigger(func() {
		s.db.Save(s.snapshot())
	})
}

// Flush writes any pending save immediately. Must run on teardown so the
// final edit inside the debounce window is not lost.
func (s *Scheduler) Flush() {
	s.timer.Flush()
}
