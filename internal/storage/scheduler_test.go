package storage

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayora/internal/store"
)

func TestSchedulerCoalescesWrites(t *testing.T) {
	db := openTestDB(t)

	snapshots := 0
	state := &store.AppState{Query: ""}
	sched := NewScheduler(db, func() *store.AppState {
		snapshots++
		return state.Clone()
	}, 25*time.Millisecond)

	for i := 0; i < 20; i++ {
		state.Query += "x"
		sched.Arm()
	}

	assert.Eventually(t, func() bool {
		got := db.Load()
		return got != nil && got.Query == state.Query
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, snapshots, "burst collapses into one snapshot+write")
}

func TestSchedulerFlushWritesPendingState(t *testing.T) {
	db := openTestDB(t)

	state := &store.AppState{Query: "final edit"}
	sched := NewScheduler(db, state.Clone, time.Hour)

	sched.Arm()
	require.Nil(t, db.Load(), "nothing written inside the window")

	sched.Flush()
	got := db.Load()
	require.NotNil(t, got)
	assert.Equal(t, "final edit", got.Query)

	// Flush with nothing pending writes nothing new.
	sched.Flush()
}

func TestSchedulerEndToEndWithStore(t *testing.T) {
	db := openTestDB(t)

	s := store.New(nil, zerolog.Nop())
	sched := NewScheduler(db, s.Snapshot, 20*time.Millisecond)
	s.OnChange(sched.Arm)

	f, ok := s.CreateFolder("Work")
	require.True(t, ok)
	n := s.CreateNote(f.ID)
	s.CommitDraft(n.ID, "", "persisted body")

	assert.Eventually(t, func() bool {
		got := db.Load()
		if got == nil {
			return false
		}
		reloaded := store.New(got, zerolog.Nop())
		note, ok := reloaded.NoteByID(n.ID)
		return ok && note.Body == "persisted body" && note.Title == "persisted body"
	}, time.Second, 5*time.Millisecond)
}
