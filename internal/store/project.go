package store

import (
	"sort"
	"strings"
)

// Project computes the visible, ordered note list from the raw collection
// and the current filters. It is pure: identical inputs yield identical
// output and no hidden state is kept between calls.
//
// Filters apply in order: trash status (the trash view shows only trashed
// notes, every other view hides them), folder membership (skipped in the
// trash view, which pools notes from all folders, and for FolderAll), then
// case-insensitive substring search over title and body. Pinned notes sort
// before unpinned; within each group, newest first. Ties on updatedAt keep
// insertion order, so the sort must stay stable.
func Project(notes []Note, activeFolderID, trashID, query string) []Note {
	inTrash := activeFolderID == trashID
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.Trashed != inTrash {
			continue
		}
		if !inTrash && activeFolderID != FolderAll && n.FolderID != activeFolderID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Body), q) {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}
