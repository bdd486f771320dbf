package scrub

import (
	"time"

	"github.com/saltkettle/filmstrip/internal/log"
	"github.com/saltkettle/filmstrip/internal/player"
)

// TimelineView is the scrollable strip the controller keeps in sync with the
// player.  The controller reads the view's geometry and writes its offset;
// everything else about the strip is the view's business.
type TimelineView interface {
	Geometry() ViewportGeometry
	SetOffsetX(offsetX float64, animated bool)
}

// Controller mediates between the player and the timeline view.  Two update
// paths exist: the player's periodic tick moves the view, and user scrubbing
// moves the player.  Only one path may be live at a time or the two writers
// fight each other, so the controller acts as a suppression switch keyed on
// whether an interaction session is open.
//
// All methods must be called from the UI event loop.  The subscriptions
// registered by Bind deliver on player goroutines; callers bridge those into
// the event loop before invoking OnPlaybackTick / OnRateChange.
type Controller struct {
	player player.Player
	view   TimelineView

	interacting bool
	wasPlaying  bool

	rateListener func(playing bool)

	tickSub player.Subscription
	rateSub player.Subscription
}

// NewController creates a controller mediating between the given player and view
func NewController(p player.Player, view TimelineView) *Controller {
	return &Controller{
		player: p,
		view:   view,
	}
}

// SetRateChangeListener registers a callback invoked when the player's play
// state changes outside of an interaction session.  Used by the view to keep
// its play/pause indicator current.
func (c *Controller) SetRateChangeListener(fn func(playing bool)) {
	c.rateListener = fn
}

// Bind registers the controller's periodic-tick and rate-change subscriptions
// on the player.  Exactly one subscription exists per concern: rebinding
// cancels any handles from a previous Bind before registering new ones, so a
// repeated call can never cause the callbacks to fire twice per tick.
func (c *Controller) Bind(interval time.Duration, onTick func(seconds float64), onRate func(playing bool)) error {
	c.Close()

	tickSub, err := c.player.SubscribeTimeTick(interval, onTick)
	if err != nil {
		return err
	}

	rateSub, err := c.player.SubscribeRateChange(onRate)
	if err != nil {
		tickSub.Cancel()
		return err
	}

	c.tickSub = tickSub
	c.rateSub = rateSub
	return nil
}

// Close cancels the subscriptions held by the controller.  Safe to call
// multiple times and on a controller that was never bound.
func (c *Controller) Close() {
	if c.tickSub != nil {
		c.tickSub.Cancel()
		c.tickSub = nil
	}
	if c.rateSub != nil {
		c.rateSub.Cancel()
		c.rateSub = nil
	}
}

// Interacting reports whether an interaction session is currently open
func (c *Controller) Interacting() bool {
	return c.interacting
}

// BeginInteraction opens an interaction session: playback pauses immediately
// and the play state from before the session is remembered so EndInteraction
// can restore it.  A begin while a session is already open is ignored so the
// remembered play state cannot be clobbered by the pause we just issued.
func (c *Controller) BeginInteraction() {
	if c.interacting {
		return
	}

	c.wasPlaying = c.player.IsPlaying()
	if err := c.player.Pause(); err != nil {
		log.Warn("Failed to pause player at scrub start", "error", err)
	}
	c.interacting = true

	log.Debug("Scrub session opened", "was_playing", c.wasPlaying)
}

// UpdateInteraction seeks the player to the position the given scroll offset
// places under the viewport centre.  Only effectful while a session is open;
// a stray update while idle must never write to the player.  Play state is
// never touched here.
func (c *Controller) UpdateInteraction(offsetX float64) {
	if !c.interacting {
		return
	}

	duration := c.player.Duration()
	if duration <= 0 {
		return
	}

	progress, ok := c.view.Geometry().ProgressForOffset(offsetX)
	if !ok {
		return
	}

	if err := c.player.Seek(progress * duration); err != nil {
		log.Warn("Failed to seek player during scrub", "error", err, "progress", progress)
	}
}

// EndInteraction closes the interaction session, resuming playback only if it
// was playing when the session began.  Pause is never double-toggled: a
// session opened while already paused ends still paused.
func (c *Controller) EndInteraction() {
	if !c.interacting {
		return
	}

	if c.wasPlaying {
		if err := c.player.Play(); err != nil {
			log.Warn("Failed to resume player after scrub", "error", err)
		}
	}
	c.interacting = false
	c.wasPlaying = false

	log.Debug("Scrub session closed")
}

// OnPlaybackTick handles a periodic position update from the player, moving
// the view so the playhead stays under the viewport centre.  Suppressed while
// an interaction session is open, which is what prevents the player->view
// path from fighting the user's scrolling.  The offset write must not raise
// an interaction event on the view.
func (c *Controller) OnPlaybackTick(seconds float64) {
	if c.interacting {
		return
	}

	duration := c.player.Duration()
	if duration <= 0 {
		return
	}

	g := c.view.Geometry()
	c.view.SetOffsetX(g.OffsetForProgress(seconds/duration), false)
}

// OnRateChange handles a play-state change notification from the player.
// Changes during an interaction session are swallowed: they are the echo of
// the pause/play the controller itself issued and must not leak to the view.
func (c *Controller) OnRateChange(playing bool) {
	if c.interacting {
		return
	}
	if c.rateListener != nil {
		c.rateListener(playing)
	}
}
