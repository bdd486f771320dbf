package config

import (
	"os"
	"strconv"
)

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string)
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  Does not override any values in the config as this environment variable
		// points to where the config should be loaded.  It is handled prior to loading the config.
		name:  "FILMSTRIP_CONFIG_PATH",
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) {}, // Special case, no-op
	},
	{
		name:  "FILMSTRIP_CONFIG_PLAYER_TYPE",
		desc:  "Sets the video player type.  Should be one of `mpv` or `custom`.  Default: mpv",
		apply: func(c *Config, s string) { c.Player.Type = s },
	},
	{
		name:  "FILMSTRIP_CONFIG_PLAYER_PATH",
		desc:  "Sets the path to a video player binary.  Default: mpv",
		apply: func(c *Config, s string) { c.Player.Path = s },
	},
	{
		name:  "FILMSTRIP_CONFIG_PLAYER_ARGS",
		desc:  "Sets additional video player arguments.  Default: None",
		apply: func(c *Config, s string) { c.Player.Args = s },
	},
	{
		name:  "FILMSTRIP_CONFIG_PLAYER_SOCKET_PATH",
		desc:  "Sets the path to the player IPC socket.  Default: OS-specific",
		apply: func(c *Config, s string) { c.Player.SocketPath = s },
	},
	{
		name:  "FILMSTRIP_CONFIG_PLAYER_TICK_INTERVAL_MS",
		desc:  "Sets the playback position poll interval in milliseconds.  Default: 250",
		apply: func(c *Config, s string) { applyIntValue(s, &c.Player.TickIntervalMs) },
	},
	{
		name:  "FILMSTRIP_CONFIG_UI_STRIP_SCALE",
		desc:  "Sets the number of terminal cells per second of media on the strip.  Default: 4",
		apply: func(c *Config, s string) { applyFloatValue(s, &c.UI.StripScale) },
	},
	{
		name:  "FILMSTRIP_CONFIG_UI_SCRUB_SETTLE_MS",
		desc:  "Sets the scrub settle delay in milliseconds.  Default: 600",
		apply: func(c *Config, s string) { applyIntValue(s, &c.UI.ScrubSettleMs) },
	},
	{
		name:  "FILMSTRIP_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) { c.Logging.Level = s },
	},
	{
		name:  "FILMSTRIP_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path.  Default: OS-specific",
		apply: func(c *Config, s string) { c.Logging.FilePath = s },
	},
}

func applyEnvVarOverrides(c *Config) {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			envVar.apply(c, value)
		}
	}
}

// applyIntValue parses the string and assigns it to target.  Unparseable values are ignored so a bad
// override cannot prevent startup.
func applyIntValue(s string, target *int) {
	if v, err := strconv.Atoi(s); err == nil {
		*target = v
	}
}

func applyFloatValue(s string, target *float64) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*target = v
	}
}
