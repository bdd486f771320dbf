package player

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/log"
)

// MPVIPCClient provides communication with a running mpv instance over its
// JSON IPC protocol
type MPVIPCClient struct {
	socketPath string
	conn       net.Conn
	events     chan MPVEvent
}

// MPVEvent represents an event from mpv.  Property-change events carry the
// observed property name and its new value in Data.
type MPVEvent struct {
	Event     string          `json:"event"`
	Name      string          `json:"name,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	RequestID int             `json:"request_id,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// NewMPVIPCClient creates a new mpv IPC client
func NewMPVIPCClient(socketPath string) *MPVIPCClient {
	return &MPVIPCClient{
		socketPath: socketPath,
		events:     make(chan MPVEvent, 100),
	}
}

// GetMPVSocketPath returns the socket path for mpv IPC communication.  The
// path is unique per process so two filmstrip instances never race over the
// same socket.  An explicit config value overrides everything.
func GetMPVSocketPath(cfg *config.Config) string {
	if cfg != nil && cfg.Player.SocketPath != "" {
		return cfg.Player.SocketPath
	}

	switch runtime.GOOS {
	case "windows":
		// Windows uses named pipes instead of unix sockets
		return fmt.Sprintf(`\\.\pipe\filmstrip-mpv-%d`, os.Getpid())
	default:
		// Linux, macOS and others
		name := fmt.Sprintf("filmstrip-mpv-%d.sock", os.Getpid())
		if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
			return filepath.Join(runtimeDir, name)
		}
		return filepath.Join(os.TempDir(), name)
	}
}

// WaitForConnection attempts to connect to mpv with retries.  mpv creates the
// socket shortly after launch, so early attempts are expected to fail.
func (c *MPVIPCClient) WaitForConnection(ctx context.Context, maxAttempts int, retryDelay time.Duration) error {
	log.Debug("Waiting for mpv to create socket", "socket_path", c.socketPath, "max_attempts", maxAttempts)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Check if socket file exists for unix sockets
		if runtime.GOOS != "windows" {
			if _, err := os.Stat(c.socketPath); os.IsNotExist(err) {
				log.Debug("mpv socket does not exist yet", "attempt", attempt, "path", c.socketPath)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(retryDelay):
					continue
				}
			}
		}

		// Try to connect
		err := c.Connect(ctx)
		if err == nil {
			log.Info("Successfully connected to mpv", "attempt", attempt)
			return nil
		}

		log.Debug("Failed to connect to mpv", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
			// Continue and retry
		}
	}

	return fmt.Errorf("failed to connect to mpv after %d attempts", maxAttempts)
}

// Close closes the connection to mpv
func (c *MPVIPCClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// readEvents continuously reads events from mpv
func (c *MPVIPCClient) readEvents() {
	scanner := bufio.NewScanner(c.conn)
	for scanner.Scan() {
		line := scanner.Text()

		// Log the raw data at trace level to see exactly what mpv is sending
		log.Trace("Raw mpv event", "data", line)

		var event MPVEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			log.Error("Failed to unmarshal mpv event", "error", err)
			continue
		}

		c.events <- event
	}

	if err := scanner.Err(); err != nil {
		log.Error("Error reading from mpv socket", "error", err)
	}

	log.Debug("mpv event reader stopped")
	close(c.events)
}

// Events returns the channel for mpv events
func (c *MPVIPCClient) Events() <-chan MPVEvent {
	return c.events
}

// SendCommand sends a command to mpv
func (c *MPVIPCClient) SendCommand(cmd []interface{}) error {
	if c.conn == nil {
		return fmt.Errorf("not connected to mpv")
	}

	cmdObj := map[string]interface{}{
		"command": cmd,
	}

	data, err := json.Marshal(cmdObj)
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	data = append(data, '\n')
	_, err = c.conn.Write(data)
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}

	return nil
}

// ObserveProperty starts observing an mpv property.  mpv replays the current
// value immediately, then sends a property-change event on every change.
func (c *MPVIPCClient) ObserveProperty(id int, name string) error {
	return c.SendCommand([]interface{}{"observe_property", id, name})
}
