package models

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/log"
	"github.com/saltkettle/filmstrip/internal/player"
	"github.com/saltkettle/filmstrip/internal/scrub"
	kb "github.com/saltkettle/filmstrip/internal/ui/tui/keybindings"
)

// Scrub step sizes in seconds of media time
const (
	fineScrubSeconds   = 1.0
	coarseScrubSeconds = 10.0
)

// playerEventBuffer sizes the channel bridging player goroutines into the
// TUI event loop.  Callbacks drop on a full buffer rather than block the
// player's dispatch goroutine; a dropped tick is superseded by the next one.
const playerEventBuffer = 16

// ScrubberModel is the timeline view for a single loaded media file.  It
// owns the player for that file and drives a scrub.Controller: key input
// opens and feeds an interaction session, player events arrive over the
// events channel and are fed back into the controller.
type ScrubberModel struct {
	width, height int
	cfg           *config.Config

	path   string
	player player.Player
	ctrl   *scrub.Controller

	offsetX     float64
	currentTime float64
	duration    float64
	playing     bool

	// scrubSeq identifies the current scrub generation; settle timers armed
	// for earlier generations are ignored
	scrubSeq int

	events    chan tea.Msg
	quit      chan struct{}
	closeOnce sync.Once
}

// NewScrubberModel creates a scrubber for media already loaded in the player
func NewScrubberModel(cfg *config.Config, p player.Player, path string) *ScrubberModel {
	m := &ScrubberModel{
		cfg:    cfg,
		path:   path,
		player: p,
		events: make(chan tea.Msg, playerEventBuffer),
		quit:   make(chan struct{}),
	}
	m.ctrl = scrub.NewController(p, m)
	m.ctrl.SetRateChangeListener(func(playing bool) {
		m.playing = playing
	})
	return m
}

func (m *ScrubberModel) ViewType() View {
	return ViewScrubber
}

// Geometry reports the strip dimensions the controller maps progress against
func (m *ScrubberModel) Geometry() scrub.ViewportGeometry {
	return scrub.ViewportGeometry{
		ContentWidth:  m.duration * m.cfg.UI.StripScale,
		ViewportWidth: float64(m.width),
		OffsetX:       m.offsetX,
	}
}

// SetOffsetX moves the strip.  Cell-based terminal rendering has no
// animation so the animated hint is ignored.
func (m *ScrubberModel) SetOffsetX(offsetX float64, animated bool) {
	m.offsetX = offsetX
}

// Init snapshots the player state and binds the controller's subscriptions,
// bridging their callbacks into the TUI event loop over the events channel
func (m *ScrubberModel) Init() tea.Cmd {
	m.duration = m.player.Duration()
	m.currentTime = m.player.CurrentTime()
	m.playing = m.player.IsPlaying()
	m.offsetX = m.Geometry().OffsetForProgress(m.progress())

	interval := time.Duration(m.cfg.Player.TickIntervalMs) * time.Millisecond
	err := m.ctrl.Bind(interval,
		func(seconds float64) {
			m.enqueue(PlaybackTickMsg{Seconds: seconds})
		},
		func(playing bool) {
			m.enqueue(RateChangeMsg{Playing: playing})
		},
	)
	if err != nil {
		log.Error("Failed to bind scrub controller to player", "error", err)
	}

	return m.listenForPlayerEvents()
}

func (m *ScrubberModel) progress() float64 {
	if m.duration <= 0 {
		return 0
	}
	return m.currentTime / m.duration
}

// enqueue hands a player event to the TUI loop, dropping it if the loop is
// behind
func (m *ScrubberModel) enqueue(msg tea.Msg) {
	select {
	case m.events <- msg:
	default:
		log.Debug("Dropping player event, TUI event buffer full")
	}
}

// listenForPlayerEvents returns a command that delivers the next bridged
// player event.  It is re-armed after each delivery.
func (m *ScrubberModel) listenForPlayerEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.quit:
			return nil
		}
	}
}

// Update handles messages
func (m *ScrubberModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlaybackTickMsg:
		m.currentTime = msg.Seconds
		if d := m.player.Duration(); d > 0 {
			m.duration = d
		}
		m.ctrl.OnPlaybackTick(msg.Seconds)
		return m, m.listenForPlayerEvents()

	case RateChangeMsg:
		m.ctrl.OnRateChange(msg.Playing)
		return m, m.listenForPlayerEvents()

	case ScrubSettleMsg:
		if msg.Seq == m.scrubSeq && m.ctrl.Interacting() {
			m.ctrl.EndInteraction()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *ScrubberModel) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch kb.GetActionByKey(msg, kb.ContextScrubber) {
	case kb.ActionScrubLeft:
		return m, m.scrubBy(-fineScrubSeconds)
	case kb.ActionScrubRight:
		return m, m.scrubBy(fineScrubSeconds)
	case kb.ActionScrubLeftFast:
		return m, m.scrubBy(-coarseScrubSeconds)
	case kb.ActionScrubRightFast:
		return m, m.scrubBy(coarseScrubSeconds)
	case kb.ActionJumpStart:
		return m, m.scrubTo(0)
	case kb.ActionJumpEnd:
		return m, m.scrubTo(1)
	case kb.ActionTogglePlayback:
		// Play state is owned by the interaction session while one is open
		if m.ctrl.Interacting() {
			return m, nil
		}
		return m, m.togglePlayback()
	case kb.ActionCloseScrubber:
		m.Close()
		return m, func() tea.Msg { return ScrubberClosedMsg{} }
	}

	return m, nil
}

// scrubBy moves the scrub position by a delta in seconds of media time
func (m *ScrubberModel) scrubBy(deltaSeconds float64) tea.Cmd {
	if m.duration <= 0 {
		return nil
	}
	g := m.Geometry()
	return m.scrubToOffset(m.offsetX+deltaSeconds*m.cfg.UI.StripScale, g)
}

// scrubTo moves the scrub position to an absolute progress fraction
func (m *ScrubberModel) scrubTo(progress float64) tea.Cmd {
	if m.duration <= 0 {
		return nil
	}
	g := m.Geometry()
	return m.scrubToOffset(g.OffsetForProgress(progress), g)
}

// scrubToOffset opens an interaction session if needed, applies the offset,
// and arms the settle timer that will end the session once input stops
func (m *ScrubberModel) scrubToOffset(target float64, g scrub.ViewportGeometry) tea.Cmd {
	if !m.ctrl.Interacting() {
		m.ctrl.BeginInteraction()
	}

	minOffset := g.OffsetForProgress(0)
	maxOffset := g.OffsetForProgress(1)
	if target < minOffset {
		target = minOffset
	}
	if target > maxOffset {
		target = maxOffset
	}

	m.offsetX = target
	m.ctrl.UpdateInteraction(target)

	m.scrubSeq++
	seq := m.scrubSeq
	settle := time.Duration(m.cfg.UI.ScrubSettleMs) * time.Millisecond
	return tea.Tick(settle, func(time.Time) tea.Msg {
		return ScrubSettleMsg{Seq: seq}
	})
}

func (m *ScrubberModel) togglePlayback() tea.Cmd {
	if m.player.IsPlaying() {
		if err := m.player.Pause(); err != nil {
			log.Error("Failed to pause playback", "error", err)
		}
	} else {
		if err := m.player.Play(); err != nil {
			log.Error("Failed to resume playback", "error", err)
		}
	}
	return nil
}

// Close tears down the controller subscriptions and the player process.
// Safe to call more than once.
func (m *ScrubberModel) Close() {
	m.closeOnce.Do(func() {
		close(m.quit)
		m.ctrl.Close()
		if err := m.player.Stop(); err != nil {
			log.Warn("Error stopping player", "path", m.path, "error", err)
		}
		m.player.Cleanup()
		log.Info("Scrubber closed", "path", m.path)
	})
}

// Resize updates the dimensions and re-centres the playhead for the new width
func (m *ScrubberModel) Resize(width, height int) {
	m.width = width
	m.height = height
	if !m.ctrl.Interacting() && m.duration > 0 {
		m.offsetX = m.Geometry().OffsetForProgress(m.progress())
	}
}

// Title is the display name of the loaded media
func (m *ScrubberModel) Title() string {
	return filepath.Base(m.path)
}
