package models

import "github.com/saltkettle/filmstrip/internal/player"

// LibraryLoadedMsg is sent when the library directory scan completes
type LibraryLoadedMsg struct {
	Entries []LibraryEntry
}

// LibraryErrorMsg is sent when the library directory scan fails
type LibraryErrorMsg struct {
	Error error
}

// FileSelectedMsg is sent when the user picks a file to scrub
type FileSelectedMsg struct {
	Path string
}

// PlayerReadyMsg is sent when the player has loaded the selected media
type PlayerReadyMsg struct {
	Player player.Player
	Path   string
}

// PlayerLoadErrorMsg is sent when launching the player fails
type PlayerLoadErrorMsg struct {
	Error error
	Path  string
}

// PlaybackTickMsg carries a periodic playback position update bridged from
// the player's tick subscription into the TUI event loop
type PlaybackTickMsg struct {
	Seconds float64
}

// RateChangeMsg carries a play-state change bridged from the player's
// rate-change subscription into the TUI event loop
type RateChangeMsg struct {
	Playing bool
}

// ScrubSettleMsg ends a scrub session once the settle delay has elapsed
// without further scrub input.  Seq identifies the scrub generation the timer
// was armed for; stale timers are ignored.
type ScrubSettleMsg struct {
	Seq int
}

// ScrubberClosedMsg is sent when the user closes the scrubber view
type ScrubberClosedMsg struct{}
