package store

import (
	"sync"
	"time"

	"dayora/internal/debounce"
)

// DraftCommitDelay is the quiet period after the last keystroke before
// buffered edits are committed to the store.
const DraftCommitDelay = 200 * time.Millisecond

// Draft buffers title/body edits for the focal note so keystrokes never
// touch the store directly. Edits are committed on a debounce timer; the
// pending commit is note-scoped, so switching the focal note flushes the
// previous note's edits instead of discarding them.
type Draft struct {
	store *Store
	timer *debounce.Debouncer

	mu     sync.Mutex
	noteID string
	title  string
	body   string
}

// NewDraft builds a draft buffer committing into s after delay. A zero
// delay falls back to DraftCommitDelay.
func NewDraft(s *Store, delay time.Duration) *Draft {
	if delay <= 0 {
		delay = DraftCommitDelay
	}
	return &Draft{store: s, timer: debounce.New(delay)}
}

// SetActive switches the buffer to another focal note ("" for none). Any
// pending commit for the previous note fires first, then the buffer is
// reset to the new note's persisted title and body.
func (d *Draft) SetActive(noteID string) {
	d.timer.Flush()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.noteID = noteID
	d.title = ""
	d.body = ""
	if noteID != "" {
		if n, ok := d.store.NoteByID(noteID); ok {
			d.title = n.Title
			d.body = n.Body
		}
	}
}

// NoteID returns the focal note id, "" when none.
func (d *Draft) NoteID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.noteID
}

// Title returns the buffered title.
func (d *Draft) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// Body returns the buffered body.
func (d *Draft) Body() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.body
}

// SetTitle records a title edit and re-arms the commit timer.
func (d *Draft) SetTitle(title string) {
	d.mu.Lock()
	d.title = title
	d.mu.Unlock()
	d.arm()
}

// SetBody records a body edit and re-arms the commit timer.
func (d *Draft) SetBody(body string) {
	d.mu.Lock()
	d.body = body
	d.mu.Unlock()
	d.arm()
}

// arm schedules a commit of the buffer as it stands right now. The closure
// captures the note id and text, so a later focus change cannot redirect a
// pending commit at the wrong note.
func (d *Draft) arm() {
	d.mu.Lock()
	noteID, title, body := d.noteID, d.title, d.body
	d.mu.Unlock()
	if noteID == "" {
		return
	}
	d.timer.Trigger(func() {
		d.store.CommitDraft(noteID, title, body)
	})
}

// Flush commits any pending edits immediately. Called on app teardown and
// before operations that must observe the committed text.
func (d *Draft) Flush() {
	d.timer.Flush()
}

// Discard drops any pending commit, for when the focal note was just
// removed and its edits have nowhere to go.
func (d *Draft) Discard() {
	d.timer.Stop()
}
