package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTrashID = "f-trash"

func TestProjectTrashView(t *testing.T) {
	notes := []Note{
		{ID: "a", FolderID: "f1"},
		{ID: "b", FolderID: "f1", Trashed: true},
		{ID: "c", FolderID: "f2", Trashed: true},
	}

	got := Project(notes, testTrashID, testTrashID, "")
	require.Len(t, got, 2, "trash pools trashed notes from all folders")
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestProjectFolderView(t *testing.T) {
	notes := []Note{
		{ID: "a", FolderID: "f1"},
		{ID: "b", FolderID: "f2"},
		{ID: "c", FolderID: "f1", Trashed: true},
	}

	got := Project(notes, "f1", testTrashID, "")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestProjectAllFolderBypassesMembership(t *testing.T) {
	notes := []Note{
		{ID: "a", FolderID: "f1"},
		{ID: "b", FolderID: "f2"},
		{ID: "c", FolderID: "f2", Trashed: true},
	}

	got := Project(notes, FolderAll, testTrashID, "")
	require.Len(t, got, 2, "f-all shows active notes from every folder")
}

func TestProjectQuery(t *testing.T) {
	notes := []Note{
		{ID: "a", FolderID: "f1", Body: "I have a cat"},
		{ID: "b", FolderID: "f1", Body: "I have a dog"},
		{ID: "c", FolderID: "f1", Title: "CATALOG"},
	}

	for _, q := range []string{"cat", "CAT", "  cat "} {
		got := Project(notes, "f1", testTrashID, q)
		require.Len(t, got, 2, "query %q", q)
		ids := []string{got[0].ID, got[1].ID}
		assert.ElementsMatch(t, []string{"a", "c"}, ids)
	}
}

func TestProjectSortOrder(t *testing.T) {
	notes := []Note{
		{ID: "old-pinned", FolderID: "f1", Pinned: true, UpdatedAt: 1},
		{ID: "newest", FolderID: "f1", UpdatedAt: 100},
		{ID: "new-pinned", FolderID: "f1", Pinned: true, UpdatedAt: 50},
		{ID: "oldest", FolderID: "f1", UpdatedAt: 2},
	}

	got := Project(notes, "f1", testTrashID, "")
	ids := make([]string, len(got))
	for i, n := range got {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"new-pinned", "old-pinned", "newest", "oldest"}, ids,
		"pinned before unpinned regardless of timestamps, newest first within groups")
}

func TestProjectTieBreakKeepsInsertionOrder(t *testing.T) {
	notes := []Note{
		{ID: "first", FolderID: "f1", UpdatedAt: 7},
		{ID: "second", FolderID: "f1", UpdatedAt: 7},
		{ID: "third", FolderID: "f1", UpdatedAt: 7},
	}

	got := Project(notes, "f1", testTrashID, "")
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
	assert.Equal(t, "third", got[2].ID)
}

func TestProjectDeterministic(t *testing.T) {
	notes := []Note{
		{ID: "a", FolderID: "f1", UpdatedAt: 3, Body: "cat"},
		{ID: "b", FolderID: "f1", UpdatedAt: 3, Pinned: true},
		{ID: "c", FolderID: "f1", UpdatedAt: 9},
	}

	first := Project(notes, "f1", testTrashID, "")
	second := Project(notes, "f1", testTrashID, "")
	assert.Equal(t, first, second)
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	notes := []Note{
		{ID: "a", FolderID: "f1", UpdatedAt: 1},
		{ID: "b", FolderID: "f1", UpdatedAt: 2},
	}

	_ = Project(notes, "f1", testTrashID, "")
	assert.Equal(t, "a", notes[0].ID)
	assert.Equal(t, "b", notes[1].ID)
}
