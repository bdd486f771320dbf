package models

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubscription struct{}

func (s *stubSubscription) Cancel() {}

// stubPlayer records the calls the scrubber makes so tests can assert on the
// gesture semantics without a real mpv process
type stubPlayer struct {
	currentTime float64
	duration    float64
	playing     bool

	seeks      []float64
	playCalls  int
	pauseCalls int
}

func (p *stubPlayer) Load(ctx context.Context, mediaPath string) error { return nil }
func (p *stubPlayer) CurrentTime() float64                             { return p.currentTime }
func (p *stubPlayer) Duration() float64                                { return p.duration }
func (p *stubPlayer) IsPlaying() bool                                  { return p.playing }

func (p *stubPlayer) Play() error {
	p.playCalls++
	p.playing = true
	return nil
}

func (p *stubPlayer) Pause() error {
	p.pauseCalls++
	p.playing = false
	return nil
}

func (p *stubPlayer) Seek(seconds float64) error {
	p.seeks = append(p.seeks, seconds)
	p.currentTime = seconds
	return nil
}

func (p *stubPlayer) SubscribeTimeTick(interval time.Duration, fn func(seconds float64)) (player.Subscription, error) {
	return &stubSubscription{}, nil
}

func (p *stubPlayer) SubscribeRateChange(fn func(playing bool)) (player.Subscription, error) {
	return &stubSubscription{}, nil
}

func (p *stubPlayer) Stop() error { return nil }
func (p *stubPlayer) Cleanup()    {}

func testConfig() *config.Config {
	return &config.Config{
		Player: config.PlayerConfig{
			Type:           "mpv",
			TickIntervalMs: 250,
		},
		UI: config.UIConfig{
			StripScale:    4,
			ScrubSettleMs: 600,
		},
	}
}

func newTestScrubber(t *testing.T, p *stubPlayer, width int) *ScrubberModel {
	t.Helper()
	m := NewScrubberModel(testConfig(), p, "/media/example.mkv")
	m.Resize(width, 24)
	cmd := m.Init()
	require.NotNil(t, cmd, "Init should arm the player event listener")
	return m
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestScrubKeyOpensSessionAndSeeks(t *testing.T) {
	p := &stubPlayer{duration: 100, currentTime: 50, playing: true}
	m := newTestScrubber(t, p, 300)

	_, cmd := m.Update(keyMsg(tea.KeyRight))
	require.NotNil(t, cmd, "scrub should arm a settle timer")

	assert.True(t, m.ctrl.Interacting())
	assert.Equal(t, 1, p.pauseCalls, "opening a scrub session pauses playback")
	require.Len(t, p.seeks, 1)
	assert.InDelta(t, 51.0, p.seeks[0], 0.001, "one fine step moves one second forward")
}

func TestSettleEndsSessionAndResumes(t *testing.T) {
	p := &stubPlayer{duration: 100, currentTime: 50, playing: true}
	m := newTestScrubber(t, p, 300)

	m.Update(keyMsg(tea.KeyRight))
	m.Update(keyMsg(tea.KeyRight))
	m.Update(ScrubSettleMsg{Seq: m.scrubSeq})

	assert.False(t, m.ctrl.Interacting())
	assert.Equal(t, 1, p.playCalls, "exactly one resume per session")
}

func TestStaleSettleTimerIgnored(t *testing.T) {
	p := &stubPlayer{duration: 100, currentTime: 50, playing: true}
	m := newTestScrubber(t, p, 300)

	m.Update(keyMsg(tea.KeyRight))
	staleSeq := m.scrubSeq
	m.Update(keyMsg(tea.KeyRight))

	m.Update(ScrubSettleMsg{Seq: staleSeq})
	assert.True(t, m.ctrl.Interacting(), "settle from a superseded scrub must not end the session")

	m.Update(ScrubSettleMsg{Seq: m.scrubSeq})
	assert.False(t, m.ctrl.Interacting())
}

func TestJumpEndClampsToMediaEnd(t *testing.T) {
	p := &stubPlayer{duration: 100, currentTime: 10, playing: false}
	m := newTestScrubber(t, p, 300)

	m.Update(keyMsg(tea.KeyEnd))

	require.NotEmpty(t, p.seeks)
	assert.InDelta(t, 100.0, p.seeks[len(p.seeks)-1], 0.001)

	m.Update(ScrubSettleMsg{Seq: m.scrubSeq})
	assert.Zero(t, p.playCalls, "paused media stays paused after the session")
}

func TestPlaybackToggleIgnoredDuringScrub(t *testing.T) {
	p := &stubPlayer{duration: 100, currentTime: 50, playing: true}
	m := newTestScrubber(t, p, 300)

	m.Update(keyMsg(tea.KeyRight))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})

	assert.True(t, m.ctrl.Interacting())
	assert.Equal(t, 1, p.pauseCalls, "the toggle must not reach the player mid-session")
}

func TestTickMovesStripWhenIdle(t *testing.T) {
	p := &stubPlayer{duration: 100, currentTime: 0, playing: true}
	m := newTestScrubber(t, p, 300)

	m.Update(PlaybackTickMsg{Seconds: 50})

	// contentWidth 400, progress 0.5 puts the playhead at offset 200-150
	assert.InDelta(t, 50.0, m.offsetX, 0.001)
	assert.InDelta(t, 50.0, m.currentTime, 0.001)
}

func TestZeroDurationScrubIsNoOp(t *testing.T) {
	p := &stubPlayer{duration: 0, playing: false}
	m := newTestScrubber(t, p, 300)

	_, cmd := m.Update(keyMsg(tea.KeyRight))

	assert.Nil(t, cmd)
	assert.False(t, m.ctrl.Interacting())
	assert.Empty(t, p.seeks)
}
