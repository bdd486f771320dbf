package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString cuts a string to fit within maxWidth visual width
func TruncateString(s string, maxWidth int) string {
	width := 0
	for i, r := range s {
		charWidth := runewidth.RuneWidth(r)
		// Check if adding this rune would exceed maxWidth
		if width+charWidth > maxWidth-3 { // Reserve space for "..."
			return s[:i] + "..."
		}
		width += charWidth
	}
	return s // Return as is if it fits
}

// PadToWidth pads a string with spaces to exactly the given visual width,
// truncating first if it is too wide.  Visual width matters here: file names
// can contain double-width runes that would break column alignment.
func PadToWidth(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = TruncateString(s, width)
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// FormatFileSize formats a byte count into a short human-readable string
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
