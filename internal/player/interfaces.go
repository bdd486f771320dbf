package player

import (
	"context"
	"time"
)

// Player defines the media player contract consumed by the scrub controller
// and the TUI.  Implementations own the actual player process; callers only
// ever see playback state, commands and subscriptions.
type Player interface {
	// Load starts the player with the given media file and blocks until the
	// file is loaded or the context expires
	Load(ctx context.Context, mediaPath string) error

	// State queries.  These read a cached view of the player state and never block.
	CurrentTime() float64
	Duration() float64
	IsPlaying() bool

	// Playback commands
	Play() error
	Pause() error
	Seek(seconds float64) error

	// SubscribeTimeTick registers a callback invoked every interval with the
	// current playback time.  Callbacks run on a player-owned goroutine;
	// callers that need them on a UI loop must bridge them across themselves.
	SubscribeTimeTick(interval time.Duration, fn func(seconds float64)) (Subscription, error)

	// SubscribeRateChange registers a callback invoked whenever the player
	// flips between playing and paused
	SubscribeRateChange(fn func(playing bool)) (Subscription, error)

	// Stop stops the current playback and releases the player process
	Stop() error

	// Cleanup performs any necessary cleanup
	Cleanup()
}

// Subscription is a handle to a registered player callback.  Cancel releases
// the callback and any goroutine serving it; it is safe to call more than once.
type Subscription interface {
	Cancel()
}
