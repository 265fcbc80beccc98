// Package utils provides shared utility functions for the TUI.
package utils

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	if maxLen == 1 {
		return "…"
	}

	// Iterate by runes to find cut point
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// PadRight pads s with spaces up to width display cells.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// RowRange formats the footer shown under a list, e.g. "1–5 of 12".
// It returns "" when there is nothing to show.
func RowRange(first, last, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d–%d of %d", first, last, total)
}
