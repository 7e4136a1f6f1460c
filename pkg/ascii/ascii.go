// Package ascii provides display-width helpers for aligned terminal output
package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of a string, accounting for multi-width
// Unicode characters (emoji, CJK, etc.).
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// MaxWidth returns the widest display width among lines
func MaxWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// Rule returns a horizontal rule of ch at least minWidth columns wide,
// widened to cover the widest of lines.
func Rule(ch string, minWidth int, lines ...string) string {
	width := minWidth
	if w := MaxWidth(lines); w > width {
		width = w
	}
	if cw := StringWidth(ch); cw > 1 {
		width = (width + cw - 1) / cw
	}
	return strings.Repeat(ch, width)
}
