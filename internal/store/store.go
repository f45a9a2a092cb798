// Package store holds the authoritative note/folder state and the rules for
// moving notes between folders and trash. All mutations are synchronous and
// total: guard failures suppress the action instead of raising an error,
// except where the caller needs to surface a rejection (deleting Trash).
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"dayora/internal/id"
)

const (
	// TrashName distinguishes the trash folder. The trash id is looked up
	// by name because legacy documents created it under LegacyTrashID and
	// newer ones under a generated id.
	TrashName = "Trash"

	// LegacyTrashID is the fixed id early documents used for the trash
	// folder. Bootstrap reuses it when it has to create the folder, so
	// repeated repairs stay idempotent.
	LegacyTrashID = "f-trash"

	// FolderAll is the pseudo-folder id that makes the projector pool
	// active notes from every folder.
	FolderAll = "f-all"

	defaultFolderID = "f-default"
	ideasFolderID   = "f-ideas"
)

// ErrTrashFolder is returned when a caller tries to delete the trash folder.
var ErrTrashFolder = errors.New("cannot delete the trash folder")

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Store owns the canonical AppState. A mutex guards it because the draft
// and persistence debounce timers fire on their own goroutines; logically
// there is a single writer and last arrival wins.
type Store struct {
	mu       sync.Mutex
	state    *AppState
	log      zerolog.Logger
	onChange func()
}

// New builds a Store around a loaded state, seeding a fresh document when
// initial is nil and repairing invariants either way.
func New(initial *AppState, log zerolog.Logger) *Store {
	if initial == nil {
		initial = seedState()
	}
	s := &Store{state: initial, log: log}
	s.bootstrap()
	return s
}

// OnChange registers the hook invoked after every state change. Set it once
// during wiring, before any mutation runs.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// update runs fn under the lock and fires the change hook afterwards when fn
// reports a change. The hook runs outside the lock so it may read the store.
func (s *Store) update(fn func() bool) {
	s.mu.Lock()
	changed := fn()
	s.mu.Unlock()
	if changed && s.onChange != nil {
		s.onChange()
	}
}

// seedState is the first-run document: the same folders and welcome notes
// the app has always shipped with.
func seedState() *AppState {
	now := nowMillis()
	welcome := Note{
		ID:        id.NewNoteID(),
		Title:     "Welcome",
		Body:      "This is your first note.\nType away!",
		Pinned:    true,
		UpdatedAt: now,
		FolderID:  defaultFolderID,
	}
	todo := Note{
		ID:        id.NewNoteID(),
		Title:     "Todo",
		Body:      "- [ ] Try dark mode\n- [ ] Create a new note\n- [ ] Search notes in the list pane\n- [ ] Delete moves to Trash",
		UpdatedAt: now - 10000,
		FolderID:  defaultFolderID,
	}
	return &AppState{
		Folders: []Folder{
			{ID: defaultFolderID, Name: "Notes"},
			{ID: ideasFolderID, Name: "Ideas"},
			{ID: LegacyTrashID, Name: TrashName},
		},
		Notes:          []Note{welcome, todo},
		ActiveFolderID: defaultFolderID,
		ActiveNoteID:   welcome.ID,
		DarkMode:       DarkModeLight,
		Settings:       DefaultSettings(),
	}
}

// bootstrap repairs the two load-time invariants: exactly one folder named
// Trash exists, and every note's folderId references a live folder.
func (s *Store) bootstrap() {
	st := s.state

	trashID := ""
	for _, f := range st.Folders {
		if f.Name == TrashName {
			trashID = f.ID
			break
		}
	}
	if trashID == "" {
		st.Folders = append(st.Folders, Folder{ID: LegacyTrashID, Name: TrashName})
		trashID = LegacyTrashID
		s.log.Info().Msg("bootstrap: created missing trash folder")
	}

	fallback := ""
	for _, f := range st.Folders {
		if f.ID != trashID {
			fallback = f.ID
			break
		}
	}
	if fallback == "" {
		st.Folders = append([]Folder{{ID: defaultFolderID, Name: "Notes"}}, st.Folders...)
		fallback = defaultFolderID
	}

	known := make(map[string]bool, len(st.Folders))
	for _, f := range st.Folders {
		known[f.ID] = true
	}
	for i := range st.Notes {
		if st.Notes[i].FolderID == "" || !known[st.Notes[i].FolderID] {
			s.log.Debug().Str("note", st.Notes[i].ID).Msg("bootstrap: reassigned orphaned note")
			st.Notes[i].FolderID = fallback
		}
	}

	if st.ActiveFolderID == "" || !known[st.ActiveFolderID] {
		st.ActiveFolderID = fallback
	}
	switch st.DarkMode {
	case DarkModeLight, DarkModeDark, DarkModeAuto:
	default:
		st.DarkMode = DarkModeLight
	}
}

// Snapshot returns a deep copy of the current state for persistence.
func (s *Store) Snapshot() *AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// TrashID returns the id of the trash folder.
func (s *Store) TrashID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trashIDLocked()
}

func (s *Store) trashIDLocked() string {
	for _, f := range s.state.Folders {
		if f.Name == TrashName {
			return f.ID
		}
	}
	// Unreachable after bootstrap; keep the legacy id as a safety net.
	return LegacyTrashID
}

// Folders returns a copy of the folder list in insertion order.
func (s *Store) Folders() []Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Folder(nil), s.state.Folders...)
}

// FolderByID looks up one folder.
func (s *Store) FolderByID(fid string) (Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.state.Folders {
		if f.ID == fid {
			return f, true
		}
	}
	return Folder{}, false
}

// NoteByID looks up one note.
func (s *Store) NoteByID(nid string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.state.Notes {
		if n.ID == nid {
			return n, true
		}
	}
	return Note{}, false
}

// ActiveFolderID returns the folder the UI is looking at.
func (s *Store) ActiveFolderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveFolderID
}

// ActiveNoteID returns the focal note id, "" when none.
func (s *Store) ActiveNoteID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveNoteID
}

// Query returns the current search query.
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Query
}

// VisibleNotes projects the note list the UI should render right now.
func (s *Store) VisibleNotes() []Note {
	s.mu.Lock()
	notes := append([]Note(nil), s.state.Notes...)
	active := s.state.ActiveFolderID
	trash := s.trashIDLocked()
	query := s.state.Query
	s.mu.Unlock()
	return Project(notes, active, trash, query)
}

// CountInFolder returns the badge count for a folder: trashed notes for the
// trash folder, active notes otherwise.
func (s *Store) CountInFolder(fid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	trash := s.trashIDLocked()
	count := 0
	for _, n := range s.state.Notes {
		if fid == trash {
			if n.Trashed {
				count++
			}
		} else if !n.Trashed && n.FolderID == fid {
			count++
		}
	}
	return count
}

// CreateFolder appends a new folder and makes it active. An empty name
// (after trimming) is a no-op.
func (s *Store) CreateFolder(name string) (Folder, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Folder{}, false
	}
	f := Folder{ID: id.NewFolderID(), Name: name}
	s.update(func() bool {
		s.state.Folders = append(s.state.Folders, f)
		s.state.ActiveFolderID = f.ID
		return true
	})
	return f, true
}

// RenameFolder renames a folder in place. Unknown id or empty name is a
// no-op.
func (s *Store) RenameFolder(fid, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.update(func() bool {
		for i := range s.state.Folders {
			if s.state.Folders[i].ID == fid {
				s.state.Folders[i].Name = name
				return true
			}
		}
		return false
	})
}

// DeleteFolder removes a folder, trashing its active notes first. Deleting
// the trash folder is rejected with ErrTrashFolder.
func (s *Store) DeleteFolder(fid string) error {
	var err error
	s.update(func() bool {
		trash := s.trashIDLocked()
		if fid == trash {
			err = ErrTrashFolder
			return false
		}
		idx := -1
		for i, f := range s.state.Folders {
			if f.ID == fid {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}

		now := nowMillis()
		for i := range s.state.Notes {
			n := &s.state.Notes[i]
			if n.FolderID == fid && !n.Trashed {
				n.Trashed = true
				n.UpdatedAt = now
			}
		}
		s.state.Folders = append(s.state.Folders[:idx], s.state.Folders[idx+1:]...)
		if s.state.ActiveFolderID == fid {
			s.state.ActiveFolderID = trash
		}
		return true
	})
	return err
}

// CreateNote inserts an empty note at the front of the collection and makes
// it active. A note can never be created inside Trash: when the target (or
// the active folder standing in for it) is the trash folder, the note lands
// in the first non-trash folder instead and the view follows it.
func (s *Store) CreateNote(targetFolderID string) Note {
	var n Note
	s.update(func() bool {
		trash := s.trashIDLocked()
		target := targetFolderID
		if target == "" {
			target = s.state.ActiveFolderID
		}
		if target == trash || target == FolderAll {
			target = ""
			for _, f := range s.state.Folders {
				if f.ID != trash {
					target = f.ID
					break
				}
			}
			if target == "" {
				f := Folder{ID: id.NewFolderID(), Name: "Notes"}
				s.state.Folders = append([]Folder{f}, s.state.Folders...)
				target = f.ID
			}
		}

		n = Note{
			ID:        id.NewNoteID(),
			UpdatedAt: nowMillis(),
			FolderID:  target,
		}
		s.state.Notes = append([]Note{n}, s.state.Notes...)
		s.state.ActiveNoteID = n.ID
		if s.state.ActiveFolderID == trash {
			s.state.ActiveFolderID = target
		}
		return true
	})
	return n
}

// TrashNote soft-deletes an active note, or permanently deletes a note that
// is already in trash. Trash and delete share this entry point keyed on the
// note's current trashed state.
func (s *Store) TrashNote(nid string) {
	s.update(func() bool {
		idx := -1
		for i, n := range s.state.Notes {
			if n.ID == nid {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}

		if s.state.Notes[idx].Trashed {
			s.state.Notes = append(s.state.Notes[:idx], s.state.Notes[idx+1:]...)
			if s.state.ActiveNoteID == nid {
				s.state.ActiveNoteID = ""
			}
			return true
		}

		s.state.Notes[idx].Trashed = true
		s.state.Notes[idx].UpdatedAt = nowMillis()
		if trash := s.trashIDLocked(); s.state.ActiveFolderID != trash {
			s.state.ActiveFolderID = trash
		}
		return true
	})
}

// RestoreNote returns a trashed note to its original folder.
func (s *Store) RestoreNote(nid string) {
	s.update(func() bool {
		for i := range s.state.Notes {
			if s.state.Notes[i].ID == nid {
				s.state.Notes[i].Trashed = false
				s.state.Notes[i].UpdatedAt = nowMillis()
				return true
			}
		}
		return false
	})
}

// TogglePin flips a note's pinned flag.
func (s *Store) TogglePin(nid string) {
	s.update(func() bool {
		for i := range s.state.Notes {
			if s.state.Notes[i].ID == nid {
				s.state.Notes[i].Pinned = !s.state.Notes[i].Pinned
				s.state.Notes[i].UpdatedAt = nowMillis()
				return true
			}
		}
		return false
	})
}

// MoveNote reassigns a note to another folder, regardless of trashed state.
func (s *Store) MoveNote(nid, fid string) {
	s.update(func() bool {
		for i := range s.state.Notes {
			if s.state.Notes[i].ID == nid {
				s.state.Notes[i].FolderID = fid
				s.state.Notes[i].UpdatedAt = nowMillis()
				return true
			}
		}
		return false
	})
}

// CommitDraft writes buffered title/body edits into a note. When the title
// is blank it is derived from the body's first non-blank line. A commit for
// a note that no longer exists is dropped.
func (s *Store) CommitDraft(nid, title, body string) {
	s.update(func() bool {
		for i := range s.state.Notes {
			if s.state.Notes[i].ID != nid {
				continue
			}
			t := strings.TrimSpace(title)
			if t == "" {
				t = DeriveTitle(body)
			}
			s.state.Notes[i].Title = t
			s.state.Notes[i].Body = body
			s.state.Notes[i].UpdatedAt = nowMillis()
			return true
		}
		return false
	})
}

// ToggleNoteCheckbox flips a checkbox marker on one line of a note's body.
func (s *Store) ToggleNoteCheckbox(nid string, line int) {
	s.update(func() bool {
		for i := range s.state.Notes {
			if s.state.Notes[i].ID != nid {
				continue
			}
			toggled := ToggleCheckbox(s.state.Notes[i].Body, line)
			if toggled == s.state.Notes[i].Body {
				return false
			}
			s.state.Notes[i].Body = toggled
			s.state.Notes[i].UpdatedAt = nowMillis()
			return true
		}
		return false
	})
}

// SetActiveFolder switches the folder view.
func (s *Store) SetActiveFolder(fid string) {
	s.update(func() bool {
		if s.state.ActiveFolderID == fid {
			return false
		}
		s.state.ActiveFolderID = fid
		return true
	})
}

// SetActiveNote switches the focal note. Pass "" for none.
func (s *Store) SetActiveNote(nid string) {
	s.update(func() bool {
		if s.state.ActiveNoteID == nid {
			return false
		}
		s.state.ActiveNoteID = nid
		return true
	})
}

// SetQuery updates the search query.
func (s *Store) SetQuery(q string) {
	s.update(func() bool {
		if s.state.Query == q {
			return false
		}
		s.state.Query = q
		return true
	})
}

// SetDarkMode updates the display-mode preference.
func (s *Store) SetDarkMode(m DarkMode) {
	s.update(func() bool {
		if s.state.DarkMode == m {
			return false
		}
		s.state.DarkMode = m
		return true
	})
}

// Settings returns the current user settings.
func (s *Store) Settings() UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state.Settings
	st.Habits = append([]Habit(nil), st.Habits...)
	st.Goals = append([]Goal(nil), st.Goals...)
	return st
}

// SetSettings replaces the user settings wholesale.
func (s *Store) SetSettings(st UserSettings) {
	s.update(func() bool {
		s.state.Settings = st
		return true
	})
}

// PlanByDate returns the daily plan for a YYYY-MM-DD date.
func (s *Store) PlanByDate(date string) (DailyPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.DailyPlans {
		if p.Date == date {
			p.Tasks = append([]DailyTask(nil), p.Tasks...)
			return p, true
		}
	}
	return DailyPlan{}, false
}

// UpsertPlan inserts or replaces the plan for its date.
func (s *Store) UpsertPlan(plan DailyPlan) {
	s.update(func() bool {
		for i := range s.state.DailyPlans {
			if s.state.DailyPlans[i].Date == plan.Date {
				s.state.DailyPlans[i] = plan
				return true
			}
		}
		s.state.DailyPlans = append(s.state.DailyPlans, plan)
		return true
	})
}
