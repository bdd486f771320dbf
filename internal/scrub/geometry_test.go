package scrub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressForOffset(t *testing.T) {
	g := ViewportGeometry{ContentWidth: 8000, ViewportWidth: 300}

	progress, ok := g.ProgressForOffset(3850)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, progress, 1e-9)

	// Offsets beyond either edge clamp rather than producing an out-of-range
	// seek fraction.
	progress, _ = g.ProgressForOffset(-10000)
	assert.Equal(t, 0.0, progress)

	progress, _ = g.ProgressForOffset(100000)
	assert.Equal(t, 1.0, progress)
}

func TestProgressForOffsetEmptyContent(t *testing.T) {
	g := ViewportGeometry{ContentWidth: 0, ViewportWidth: 300}

	_, ok := g.ProgressForOffset(100)
	assert.False(t, ok, "zero content width cannot express progress")
}

func TestOffsetForProgress(t *testing.T) {
	g := ViewportGeometry{ContentWidth: 8000, ViewportWidth: 300}

	assert.InDelta(t, 3850, g.OffsetForProgress(0.5), 1e-9)

	// The start of the media sits at a negative offset because the playhead
	// is centre-anchored.
	assert.InDelta(t, -150, g.OffsetForProgress(0), 1e-9)

	// Drifted progress values clamp before conversion
	assert.InDelta(t, 7850, g.OffsetForProgress(1.2), 1e-9)
	assert.InDelta(t, -150, g.OffsetForProgress(-0.3), 1e-9)
}

func TestRoundTrip(t *testing.T) {
	g := ViewportGeometry{ContentWidth: 8000, ViewportWidth: 300}

	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got, ok := g.ProgressForOffset(g.OffsetForProgress(progress))
		assert.True(t, ok)
		assert.InDelta(t, progress, got, 1e-9)
	}
}
