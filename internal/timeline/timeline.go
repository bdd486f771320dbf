// Package timeline holds the content model for the scrubber strip: how media
// time maps onto strip cells, where tick marks and labels land, and how
// timestamps are formatted.  Everything here is pure so the TUI renderer can
// stay a thin styling layer.
package timeline

import (
	"fmt"
	"strings"
)

// Layout describes the visible slice of the timeline strip
type Layout struct {
	// Scale is the number of cells representing one second of media
	Scale float64
	// Duration of the media in seconds
	Duration float64
	// ViewportWidth is the number of visible cells
	ViewportWidth int
	// OffsetX is the leftmost visible cell of the strip content
	OffsetX float64
}

// ContentWidth returns the total width of the strip content in cells
func (l Layout) ContentWidth() float64 {
	return l.Duration * l.Scale
}

// TimeAtColumn returns the media time shown at the given viewport column
func (l Layout) TimeAtColumn(col int) float64 {
	if l.Scale <= 0 {
		return 0
	}
	return (l.OffsetX + float64(col)) / l.Scale
}

// candidate label spacings in seconds, coarsest last
var tickIntervals = []float64{1, 2, 5, 10, 15, 30, 60, 120, 300, 600, 1800, 3600}

// minLabelCells is the narrowest gap between labelled ticks that still leaves
// room for a rendered timestamp plus breathing space
const minLabelCells = 9

// TickInterval picks the finest label spacing in seconds that keeps labels
// from crowding each other at the given scale
func TickInterval(scale float64) float64 {
	if scale <= 0 {
		return tickIntervals[len(tickIntervals)-1]
	}
	for _, interval := range tickIntervals {
		if interval*scale >= minLabelCells {
			return interval
		}
	}
	return tickIntervals[len(tickIntervals)-1]
}

// LabelRow renders the row of timestamps above the strip, one label per tick,
// each anchored at its tick's column.  Exactly ViewportWidth cells wide.
func (l Layout) LabelRow() string {
	row := blankRow(l.ViewportWidth)
	if l.Scale <= 0 || l.Duration <= 0 {
		return string(row)
	}

	interval := TickInterval(l.Scale)
	for _, tick := range l.visibleTicks(interval) {
		col := int(tick*l.Scale - l.OffsetX)
		label := FormatTimestamp(tick)
		if col < 0 || col+len(label) > l.ViewportWidth {
			continue
		}
		copy(row[col:], []rune(label))
	}

	return string(row)
}

// StripRow renders the strip itself: tick marks at labelled positions, a
// solid band across in-range content, and blanks where the viewport hangs
// past either end of the media.  Exactly ViewportWidth cells wide.
func (l Layout) StripRow() string {
	row := blankRow(l.ViewportWidth)
	if l.Scale <= 0 || l.Duration <= 0 {
		return string(row)
	}

	for col := 0; col < l.ViewportWidth; col++ {
		t := l.TimeAtColumn(col)
		if t < 0 || t > l.Duration {
			continue
		}
		row[col] = '─'
	}

	interval := TickInterval(l.Scale)
	for _, tick := range l.visibleTicks(interval) {
		col := int(tick*l.Scale - l.OffsetX)
		if col >= 0 && col < l.ViewportWidth {
			row[col] = '┼'
		}
	}

	return string(row)
}

// visibleTicks returns the labelled tick times intersecting the viewport
func (l Layout) visibleTicks(interval float64) []float64 {
	var ticks []float64

	first := l.TimeAtColumn(0)
	if first < 0 {
		first = 0
	}
	// Snap up to the next tick boundary
	start := float64(int(first/interval)) * interval
	if start < first {
		start += interval
	}

	last := l.TimeAtColumn(l.ViewportWidth - 1)
	if last > l.Duration {
		last = l.Duration
	}

	for t := start; t <= last; t += interval {
		ticks = append(ticks, t)
	}
	return ticks
}

func blankRow(width int) []rune {
	if width < 0 {
		width = 0
	}
	return []rune(strings.Repeat(" ", width))
}

// FormatTimestamp renders a time in seconds as m:ss, or h:mm:ss once the
// media is an hour or longer
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
