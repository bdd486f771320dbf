package scrub

// ViewportGeometry describes the scrollable timeline strip as the controller
// sees it: a content area ContentWidth cells wide, of which ViewportWidth
// cells are visible.  OffsetX is the leftmost visible cell.  The playhead is
// anchored to the centre of the viewport, so an offset maps to the media time
// shown under that centre line.
type ViewportGeometry struct {
	ContentWidth  float64
	ViewportWidth float64
	OffsetX       float64
}

// ProgressForOffset converts a scroll offset into playback progress in [0, 1].
// Returns false when the geometry cannot express progress (non-positive
// content width), in which case callers must treat the conversion as a no-op.
func (g ViewportGeometry) ProgressForOffset(offsetX float64) (float64, bool) {
	if g.ContentWidth <= 0 {
		return 0, false
	}
	return clamp01((offsetX + g.ViewportWidth/2) / g.ContentWidth), true
}

// OffsetForProgress converts playback progress into the scroll offset that
// places the corresponding strip position under the viewport centre.  The
// result may be negative near the start of the media; the view is expected to
// render the out-of-range region as empty rather than reject the offset.
func (g ViewportGeometry) OffsetForProgress(progress float64) float64 {
	return clamp01(progress)*g.ContentWidth - g.ViewportWidth/2
}

// clamp01 clamps floating point drift at the interaction boundaries so a
// progress value is always a valid seek fraction.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
