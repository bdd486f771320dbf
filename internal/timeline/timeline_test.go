package timeline

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "0:00", FormatTimestamp(0))
	assert.Equal(t, "0:05", FormatTimestamp(5.4))
	assert.Equal(t, "1:30", FormatTimestamp(90))
	assert.Equal(t, "59:59", FormatTimestamp(3599))
	assert.Equal(t, "1:00:00", FormatTimestamp(3600))
	assert.Equal(t, "2:05:09", FormatTimestamp(7509))
	assert.Equal(t, "0:00", FormatTimestamp(-12))
}

func TestTickInterval(t *testing.T) {
	// At 4 cells/second a 5s spacing gives 20 cells between labels
	assert.Equal(t, 5.0, TickInterval(4))
	// At 10 cells/second every second can carry a label
	assert.Equal(t, 1.0, TickInterval(10))
	// At a very coarse zoom the spacing widens so labels never collide
	assert.Equal(t, 60.0, TickInterval(0.2))
	// Degenerate scale falls back to the coarsest spacing
	assert.Equal(t, 3600.0, TickInterval(0))
}

func TestRowsAreViewportWidth(t *testing.T) {
	l := Layout{Scale: 4, Duration: 100, ViewportWidth: 80, OffsetX: 50}

	assert.Len(t, []rune(l.LabelRow()), 80)
	assert.Len(t, []rune(l.StripRow()), 80)
}

func TestStripRowBlankOutsideMedia(t *testing.T) {
	// Offset places the start of the media at column 150 of the viewport
	l := Layout{Scale: 4, Duration: 100, ViewportWidth: 300, OffsetX: -150}

	row := []rune(l.StripRow())
	assert.Equal(t, ' ', row[0], "columns before the media start render blank")
	assert.NotEqual(t, ' ', row[160], "columns within the media render the band")
}

func TestLabelRowCarriesTimestamps(t *testing.T) {
	l := Layout{Scale: 4, Duration: 100, ViewportWidth: 80, OffsetX: 0}

	labels := l.LabelRow()
	assert.Contains(t, labels, "0:05")
	assert.Contains(t, labels, "0:10")
	assert.NotContains(t, labels, "0:01", "sub-interval ticks carry no label")
}

func TestZeroDurationRendersBlank(t *testing.T) {
	l := Layout{Scale: 4, Duration: 0, ViewportWidth: 40, OffsetX: 0}

	assert.Equal(t, strings.Repeat(" ", 40), l.LabelRow())
	assert.Equal(t, strings.Repeat(" ", 40), l.StripRow())
}

func TestTicksAlignBetweenRows(t *testing.T) {
	l := Layout{Scale: 4, Duration: 100, ViewportWidth: 80, OffsetX: 30}

	labels := []rune(l.LabelRow())
	strip := []rune(l.StripRow())

	for col, r := range strip {
		if r != '┼' {
			continue
		}
		// Every tick mark either starts a label or sits under blank space
		// where the label did not fit; it never lands mid-label garbage.
		if labels[col] != ' ' {
			assert.True(t, unicode.IsDigit(labels[col]), "unexpected rune over tick at col %d: %q", col, labels[col])
		}
	}
}
