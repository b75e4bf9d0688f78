// Package util holds small helpers for laying out text in terminal cells.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateAt truncates s to at most width cells, marking the cut with '…'.
func TruncateAt(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadCenter centers s in a string of the given cell width, truncating it if
// it does not fit.
func PadCenter(s string, width int) string {
	s = TruncateAt(s, width)
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", missing-left)
}

// PadRight pads s with spaces to the given cell width, truncating it if it
// does not fit.
func PadRight(s string, width int) string {
	s = TruncateAt(s, width)
	return runewidth.FillRight(s, width)
}
