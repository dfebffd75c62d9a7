package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// fitOutput clamps every line to width and keeps at most height lines,
// noting how many were cut.
func fitOutput(s string, width, height int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if width > 0 {
		for i, l := range lines {
			lines[i] = clampString(l, width)
		}
	}
	if height > 0 && len(lines) > height {
		hidden := len(lines) - height + 1
		lines = append(lines[:height-1], "… "+strconv.Itoa(hidden)+" more line(s)")
	}
	return strings.Join(lines, "\n")
}
