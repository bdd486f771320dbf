package models

import (
	"fmt"
	"strings"

	"github.com/saltkettle/filmstrip/internal/timeline"
	"github.com/saltkettle/filmstrip/internal/ui/tui/components"
	"github.com/saltkettle/filmstrip/internal/ui/tui/styles"
)

// View renders the scrubber: header, status line, the timeline strip with
// its centred playhead, and the keybinding footer
func (m *ScrubberModel) View() string {
	header := styles.Header(m.width, m.Title())

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(m.renderStatusLine())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTimeline())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderFooter())

	return sb.String()
}

func (m *ScrubberModel) renderStatusLine() string {
	position := fmt.Sprintf("%s / %s",
		timeline.FormatTimestamp(m.currentTime),
		timeline.FormatTimestamp(m.duration))

	glyph := "⏸ paused"
	if m.playing {
		glyph = "▶ playing"
	}

	line := "  " + styles.Info.Render(position) + "   " + styles.Subtle.Render(glyph)
	if m.ctrl.Interacting() {
		line += "   " + styles.ScrubBadge.Render("SCRUB")
	}
	return line
}

// renderTimeline draws the label and strip rows with the centre column
// highlighted as the playhead
func (m *ScrubberModel) renderTimeline() string {
	layout := timeline.Layout{
		Scale:         m.cfg.UI.StripScale,
		Duration:      m.duration,
		ViewportWidth: m.width,
		OffsetX:       m.offsetX,
	}

	labels := styles.Subtle.Render(layout.LabelRow())
	strip := m.renderStripRow(layout.StripRow())
	marker := m.renderMarkerRow()

	return marker + "\n" + strip + "\n" + labels
}

// renderStripRow styles the strip band and replaces the centre cell with the
// playhead marker
func (m *ScrubberModel) renderStripRow(row string) string {
	runes := []rune(row)
	centre := m.width / 2
	if centre < 0 || centre >= len(runes) {
		return styles.Strip.Render(row)
	}

	left := string(runes[:centre])
	right := string(runes[centre+1:])
	return styles.Strip.Render(left) + styles.Playhead.Render("┃") + styles.Strip.Render(right)
}

// renderMarkerRow draws the playhead arrow above the strip
func (m *ScrubberModel) renderMarkerRow() string {
	centre := m.width / 2
	if centre < 0 || m.width <= 0 {
		return ""
	}
	return strings.Repeat(" ", centre) + styles.Playhead.Render("▼")
}

func (m *ScrubberModel) renderFooter() string {
	if m.ctrl.Interacting() {
		return components.KeyBindingsBar(m.width, []components.KeyBinding{
			{Key: "←/→", Desc: "Scrub"},
			{Key: "shift+←/→", Desc: "Coarse scrub"},
			{Key: "home/end", Desc: "Jump"},
		})
	}
	return components.KeyBindingsBar(m.width, []components.KeyBinding{
		{Key: "←/→", Desc: "Scrub"},
		{Key: "space", Desc: "Play/Pause"},
		{Key: "q", Desc: "Library"},
		{Key: "ctrl+h", Desc: "Help"},
	})
}
