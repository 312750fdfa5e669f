package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given cell width, adding an ellipsis if
// needed. Wide (CJK) characters count as two cells.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	return runewidth.Truncate(value, limit, "…")
}

// truncateMiddle shortens a string to limit display cells by removing text
// from the middle, preserving both the beginning and end. Used for export
// paths, where the file name matters most.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	total := runewidth.StringWidth(value)
	if total <= limit {
		return value
	}
	const ellipsis = "…/"
	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if limit <= ellipsisWidth+1 {
		return runewidth.Truncate(value, limit, "")
	}

	keep := limit - ellipsisWidth
	prefix := keep / 3
	suffix := keep - prefix
	head := runewidth.Truncate(value, prefix, "")
	// TruncateLeft pads with spaces when it splits a wide rune.
	tail := strings.TrimLeft(runewidth.TruncateLeft(value, total-suffix, ""), " ")
	return head + ellipsis + tail
}

// spread renders left and right at either end of a line of the given width.
// When both do not fit they are joined by a single space.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// statText formats a stat as shown next to its bar. Values are printed as
// returned by the API, without clamping.
func statText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
