package store

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxTitleLength   = 120
	maxPreviewLength = 160

	checkboxOpen = "- [ ]"
	checkboxDone = "- [x]"
)

// DeriveTitle builds a display title from a note body: the first non-blank
// line, truncated to 120 runes, "Untitled" when the body has none.
func DeriveTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		r := []rune(line)
		if len(r) > maxTitleLength {
			return string(r[:maxTitleLength])
		}
		return line
	}
	return "Untitled"
}

// Preview collapses whitespace and truncates the body for list rendering.
func Preview(body string) string {
	s := strings.Join(strings.Fields(body), " ")
	r := []rune(s)
	if len(r) > maxPreviewLength {
		return string(r[:maxPreviewLength]) + "…"
	}
	return s
}

// TimeAgo formats a unix-millisecond timestamp relative to now.
func TimeAgo(ms int64) string {
	t := time.UnixMilli(ms)
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("2006-01-02")
}

// ToggleCheckbox flips a "- [ ]"/"- [x]" marker at the given zero-based line
// of body. Lines without a marker, or an out-of-range index, leave the body
// unchanged. No structure beyond the marker itself is parsed.
func ToggleCheckbox(body string, line int) string {
	lines := strings.Split(body, "\n")
	if line < 0 || line >= len(lines) {
		return body
	}
	l := lines[line]
	trimmed := strings.TrimLeft(l, " \t")
	indent := l[:len(l)-len(trimmed)]
	switch {
	case strings.HasPrefix(trimmed, checkboxOpen):
		lines[line] = indent + checkboxDone + trimmed[len(checkboxOpen):]
	case strings.HasPrefix(trimmed, checkboxDone):
		lines[line] = indent + checkboxOpen + trimmed[len(checkboxDone):]
	default:
		return body
	}
	return strings.Join(lines, "\n")
}
