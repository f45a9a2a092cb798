package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"first line", "hello world\nmore", "hello world"},
		{"skips blank lines", "\n   \n\t\n  real title  \nrest", "real title"},
		{"crlf", "\r\nwindows line\r\n", "windows line"},
		{"empty body", "", "Untitled"},
		{"whitespace only", "  \n \t ", "Untitled"},
		{"truncated at 120", strings.Repeat("a", 200), strings.Repeat("a", 120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.body))
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b c", Preview("  a\n\nb\t c  "))
	assert.Equal(t, "", Preview("   "))

	long := Preview(strings.Repeat("x ", 200))
	assert.True(t, strings.HasSuffix(long, "…"))
	assert.LessOrEqual(t, len([]rune(long)), 161)
}

func TestToggleCheckbox(t *testing.T) {
	body := "plan\n- [ ] milk\n  - [x] eggs\nnot a task"

	assert.Equal(t, "plan\n- [x] milk\n  - [x] eggs\nnot a task", ToggleCheckbox(body, 1))
	assert.Equal(t, "plan\n- [ ] milk\n  - [ ] eggs\nnot a task", ToggleCheckbox(body, 2), "indentation preserved")
	assert.Equal(t, body, ToggleCheckbox(body, 0), "line without marker untouched")
	assert.Equal(t, body, ToggleCheckbox(body, 3))
	assert.Equal(t, body, ToggleCheckbox(body, -1))
	assert.Equal(t, body, ToggleCheckbox(body, 99))
}
