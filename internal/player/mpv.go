package player

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/log"
)

// MPVPlayer implements the Player interface by driving mpv over its JSON IPC
// protocol.  Playback state is mirrored into a local cache fed by
// observe_property events, so state queries never round-trip to mpv.
type MPVPlayer struct {
	config     *config.Config
	ipcClient  *MPVIPCClient
	cmd        *exec.Cmd
	socketPath string

	mu           sync.RWMutex
	playbackTime float64
	duration     float64
	paused       bool

	subs     *subscriptions
	loadedCh chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

var _ Player = (*MPVPlayer)(nil)

// Property observation IDs registered on load
const (
	propIDPlaybackTime = 1
	propIDDuration     = 2
	propIDPause        = 3
)

// NewMPVPlayer creates a new mpv player instance
func NewMPVPlayer(cfg *config.Config) *MPVPlayer {
	socketPath := GetMPVSocketPath(cfg)
	return &MPVPlayer{
		config:     cfg,
		socketPath: socketPath,
		ipcClient:  NewMPVIPCClient(socketPath),
		subs:       newSubscriptions(),
		loadedCh:   make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Load launches mpv with the given media file, connects to its IPC socket and
// blocks until the file is loaded or the context expires
func (p *MPVPlayer) Load(ctx context.Context, mediaPath string) error {
	log.Info("Starting mpv", "media", mediaPath)

	// Get mpv binary path from config
	mpvPath := p.config.Player.Path
	if mpvPath == "" {
		mpvPath = "mpv"
	}

	// Build the arguments.  keep-open stops mpv exiting when playback reaches
	// the end of the file, which would tear the scrubber out from under the user.
	args := []string{
		"--no-terminal",
		"--keep-open=yes",
		"--input-ipc-server=" + p.socketPath,
	}

	// Add any additional configured arguments
	if p.config.Player.Args != "" {
		customArgs := ParseArgs(p.config.Player.Args)
		args = append(args, customArgs...)
	}

	// Add the media file as the final argument
	args = append(args, mediaPath)

	cmd := exec.Command(mpvPath, args...)
	setupPlayerProcess(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start mpv: %w", err)
	}
	p.cmd = cmd

	if err := releasePlayerProcess(cmd); err != nil {
		log.Warn("Failed to release mpv process", "error", err)
	}

	// Allow time for mpv to create the socket, then connect with retries
	time.Sleep(300 * time.Millisecond)

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.ipcClient.WaitForConnection(connCtx, 20, 500*time.Millisecond); err != nil {
		p.Stop()
		return fmt.Errorf("failed to connect to mpv: %w", err)
	}

	// Register the property observers feeding the state cache.  mpv replays
	// the current value of each property immediately after registration.
	for id, name := range map[int]string{
		propIDPlaybackTime: "playback-time",
		propIDDuration:     "duration",
		propIDPause:        "pause",
	} {
		if err := p.ipcClient.ObserveProperty(id, name); err != nil {
			p.Stop()
			return fmt.Errorf("failed to observe %s: %w", name, err)
		}
	}

	go p.monitorEvents()

	// Wait until mpv reports the file as loaded so callers see a usable
	// duration once Load returns
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	select {
	case <-p.loadedCh:
		log.Info("mpv loaded media", "media", mediaPath, "duration", p.Duration())
		return nil
	case <-p.done:
		return fmt.Errorf("mpv exited before loading media")
	case <-loadCtx.Done():
		p.Stop()
		return fmt.Errorf("timeout waiting for mpv to load media")
	}
}

// monitorEvents consumes the IPC event stream, updating the state cache and
// dispatching rate-change callbacks when the pause property flips
func (p *MPVPlayer) monitorEvents() {
	loadedOnce := sync.Once{}

	for event := range p.ipcClient.Events() {
		switch event.Event {
		case "file-loaded":
			loadedOnce.Do(func() { close(p.loadedCh) })

		case "end-file":
			log.Info("mpv playback ended")

		case "property-change":
			p.handlePropertyChange(event)
		}
	}

	log.Debug("mpv event channel closed, stopping monitoring")
	p.stopOnce.Do(func() { close(p.done) })
}

func (p *MPVPlayer) handlePropertyChange(event MPVEvent) {
	switch event.Name {
	case "playback-time":
		if value, ok := unmarshalFloat(event.Data); ok {
			p.mu.Lock()
			p.playbackTime = value
			p.mu.Unlock()
		}

	case "duration":
		if value, ok := unmarshalFloat(event.Data); ok {
			log.Debug("mpv reported duration", "duration", value)
			p.mu.Lock()
			p.duration = value
			p.mu.Unlock()
		}

	case "pause":
		var paused bool
		if err := json.Unmarshal(event.Data, &paused); err != nil {
			log.Warn("Failed to parse pause property", "data", string(event.Data), "error", err)
			return
		}

		p.mu.Lock()
		changed := p.paused != paused
		p.paused = paused
		p.mu.Unlock()

		if changed {
			log.Debug("mpv play state changed", "paused", paused)
			p.subs.dispatchRateChange(!paused)
		}
	}
}

// unmarshalFloat parses a raw property value as a float.  mpv sends null for
// properties that are momentarily unavailable, which is not worth a warning.
func unmarshalFloat(data json.RawMessage) (float64, bool) {
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return 0, false
	}
	return value, true
}

// CurrentTime returns the cached playback position in seconds
func (p *MPVPlayer) CurrentTime() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.playbackTime
}

// Duration returns the cached media duration in seconds.  Zero until mpv has
// reported the duration of the loaded file.
func (p *MPVPlayer) Duration() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.duration
}

// IsPlaying reports whether playback is currently running
func (p *MPVPlayer) IsPlaying() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.paused
}

// Play resumes playback
func (p *MPVPlayer) Play() error {
	return p.ipcClient.SendCommand([]interface{}{"set_property", "pause", false})
}

// Pause pauses playback
func (p *MPVPlayer) Pause() error {
	return p.ipcClient.SendCommand([]interface{}{"set_property", "pause", true})
}

// Seek moves the playback position to an absolute time in seconds
func (p *MPVPlayer) Seek(seconds float64) error {
	return p.ipcClient.SendCommand([]interface{}{"seek", seconds, "absolute"})
}

// SubscribeTimeTick registers a callback invoked every interval with the
// current playback time.  Each subscription is served by its own goroutine,
// which exits when the handle is cancelled or the player stops.
func (p *MPVPlayer) SubscribeTimeTick(interval time.Duration, fn func(seconds float64)) (Subscription, error) {
	if fn == nil {
		return nil, fmt.Errorf("nil time tick callback")
	}
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}

	sub := newTickSubscription()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-sub.stop:
				return
			case <-p.done:
				return
			case <-ticker.C:
				fn(p.CurrentTime())
			}
		}
	}()

	return sub, nil
}

// SubscribeRateChange registers a callback invoked whenever mpv flips between
// playing and paused
func (p *MPVPlayer) SubscribeRateChange(fn func(playing bool)) (Subscription, error) {
	if fn == nil {
		return nil, fmt.Errorf("nil rate change callback")
	}
	return p.subs.addRate(fn), nil
}

// Stop stops playback if it's active
func (p *MPVPlayer) Stop() error {
	p.stopOnce.Do(func() { close(p.done) })

	// Close IPC connection if it exists
	if p.ipcClient != nil {
		p.ipcClient.Close()
	}

	// Kill mpv process if it exists
	if p.cmd != nil && p.cmd.Process != nil {
		log.Info("Stopping mpv")
		return p.cmd.Process.Kill()
	}

	return nil
}

// Cleanup performs any necessary cleanup
func (p *MPVPlayer) Cleanup() {
	p.Stop()

	// Remove socket file if it exists (Unix only)
	if _, err := os.Stat(p.socketPath); err == nil {
		if err := os.Remove(p.socketPath); err != nil {
			log.Warn("Failed to remove mpv socket file", "path", p.socketPath, "error", err)
		}
	}
}
