// Package id generates the opaque identifiers used across dayora.
//
// IDs carry a short type prefix for readability in dumps and logs, but the
// text after the prefix is opaque: no domain relationship is ever derived
// from parsing an identifier.
package id

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	notePrefix   = "n_"
	folderPrefix = "f_"
	planPrefix   = "plan_"
	taskPrefix   = "task_"
)

func generate(prefix string) string {
	return prefix + strings.ToLower(ulid.MustNew(ulid.Now(), rand.Reader).String())
}

// NewNoteID returns a fresh note identifier.
func NewNoteID() string {
	return generate(notePrefix)
}

// NewFolderID returns a fresh folder identifier.
func NewFolderID() string {
	return generate(folderPrefix)
}

// NewPlanID returns a fresh daily-plan identifier.
func NewPlanID() string {
	return generate(planPrefix)
}

// NewTaskID returns a fresh task identifier.
func NewTaskID() string {
	return generate(taskPrefix)
}
