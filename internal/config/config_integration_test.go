package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestConfig(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "filmstrip-config-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Fatalf("Failed to remove temp directory: %v", err)
		}
	})

	tmpConfigPath := filepath.Join(tmpDir, "config.yaml")
	setEnv(t, "FILMSTRIP_CONFIG_PATH", tmpConfigPath)

	t.Cleanup(func() {
		cleanupEnvVars(t)
	})

	return tmpConfigPath
}

// TestConfigIntegration tests the config package with actual file operations
// This test uses a temporary directory to avoid interfering with real user configs
func TestConfigIntegration(t *testing.T) {
	// Test loading when no config exists (should create default)
	t.Run("LoadDefaultConfig", func(t *testing.T) {
		tmpConfigPath := setupTestConfig(t)
		config := loadConfig(t)

		// Verify default values
		assert.Equal(t, "mpv", config.Player.Type)
		assert.Equal(t, 250, config.Player.TickIntervalMs)
		assert.Equal(t, 4.0, config.UI.StripScale)
		assert.Equal(t, 600, config.UI.ScrubSettleMs)
		assert.Contains(t, config.UI.LibraryExtensions, ".mkv")
		assert.Equal(t, "info", config.Logging.Level)
		assert.NotEmpty(t, config.Logging.FilePath)

		// Verify file was created
		if _, err := os.Stat(tmpConfigPath); os.IsNotExist(err) {
			t.Errorf("Config file was not created at %s", tmpConfigPath)
		}

		// Load the file from disk to assert that the 'dynamic' configurations were not saved when the default config was written
		savedConfig, _ := loadFromDisk(tmpConfigPath)
		assert.Empty(t, savedConfig.Logging.FilePath)
	})

	// Test saving and loading custom values
	t.Run("SaveAndLoadConfig", func(t *testing.T) {
		tmpConfigPath := setupTestConfig(t)
		// Create a config with custom values
		customConfig := &Config{
			Player: PlayerConfig{
				Type:           "custom",
				Path:           "/usr/bin/vlc",
				Args:           "--fullscreen",
				SocketPath:     "/tmp/player.sock",
				TickIntervalMs: 100,
			},
			UI: UIConfig{
				StripScale:    8,
				ScrubSettleMs: 300,
			},
			Logging: LoggingConfig{
				Level:    "error",
				FilePath: "/var/log/filmstrip.log",
			},
		}

		saveConfig(t, customConfig, tmpConfigPath)
		loadedConfig := loadConfig(t)

		// Verify loaded values match what we saved
		assert.Equal(t, "custom", loadedConfig.Player.Type)
		assert.Equal(t, "/usr/bin/vlc", loadedConfig.Player.Path)
		assert.Equal(t, "--fullscreen", loadedConfig.Player.Args)
		assert.Equal(t, "/tmp/player.sock", loadedConfig.Player.SocketPath)
		assert.Equal(t, 100, loadedConfig.Player.TickIntervalMs)
		assert.Equal(t, 8.0, loadedConfig.UI.StripScale)
		assert.Equal(t, 300, loadedConfig.UI.ScrubSettleMs)
		assert.Equal(t, "error", loadedConfig.Logging.Level)
		assert.Equal(t, "/var/log/filmstrip.log", loadedConfig.Logging.FilePath)
	})

	// Test invalid YAML handling
	t.Run("InvalidConfig", func(t *testing.T) {
		tmpConfigPath := setupTestConfig(t)
		// Write invalid YAML to the config file
		if err := os.WriteFile(tmpConfigPath, []byte("invalid: yaml: ["), 0600); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		// Attempt to load the invalid config
		_, err := Load()
		if err == nil {
			t.Error("Expected error when loading invalid YAML, got nil")
		}
	})

	t.Run("EnvironmentVariableOverrides", func(t *testing.T) {
		setupTestConfig(t)

		setEnv(t, "FILMSTRIP_CONFIG_PLAYER_TYPE", "custom")
		setEnv(t, "FILMSTRIP_CONFIG_PLAYER_PATH", "/vlc")
		setEnv(t, "FILMSTRIP_CONFIG_PLAYER_ARGS", "--fullscreen")
		setEnv(t, "FILMSTRIP_CONFIG_PLAYER_TICK_INTERVAL_MS", "125")
		setEnv(t, "FILMSTRIP_CONFIG_UI_STRIP_SCALE", "2.5")
		setEnv(t, "FILMSTRIP_CONFIG_UI_SCRUB_SETTLE_MS", "450")
		setEnv(t, "FILMSTRIP_CONFIG_LOGGING_LEVEL", "warn")
		setEnv(t, "FILMSTRIP_CONFIG_LOGGING_FILE_PATH", "/filmstrip.log")

		config := loadConfig(t)

		assert.Equal(t, "custom", config.Player.Type)
		assert.Equal(t, "/vlc", config.Player.Path)
		assert.Equal(t, "--fullscreen", config.Player.Args)
		assert.Equal(t, 125, config.Player.TickIntervalMs)
		assert.Equal(t, 2.5, config.UI.StripScale)
		assert.Equal(t, 450, config.UI.ScrubSettleMs)
		assert.Equal(t, "warn", config.Logging.Level)
		assert.Equal(t, "/filmstrip.log", config.Logging.FilePath)

		// Remove one of the overrides, then reload the config.
		// This ensures that the env var overrides were not persisted to disk.
		unsetEnv(t, "FILMSTRIP_CONFIG_LOGGING_LEVEL")

		config = loadConfig(t)

		assert.Equal(t, "info", config.Logging.Level)
	})

	t.Run("UnparseableNumericOverrideIgnored", func(t *testing.T) {
		setupTestConfig(t)

		setEnv(t, "FILMSTRIP_CONFIG_PLAYER_TICK_INTERVAL_MS", "soon")
		setEnv(t, "FILMSTRIP_CONFIG_UI_STRIP_SCALE", "wide")

		config := loadConfig(t)

		assert.Equal(t, 250, config.Player.TickIntervalMs)
		assert.Equal(t, 4.0, config.UI.StripScale)
	})

	t.Run("ModifyConfig", func(t *testing.T) {
		setupTestConfig(t)
		config := loadConfig(t)

		assert.Equal(t, "mpv", config.Player.Type)

		err := UpdateConfig(func(config *Config) {
			config.Player.Type = "custom"
		})
		if err != nil {
			t.Fatalf("Failed to update config: %v", err)
		}

		// Reload the config and ensure it has the new value
		config = loadConfig(t)
		assert.Equal(t, "custom", config.Player.Type)
	})
}

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	err := os.Setenv(key, value)
	if err != nil {
		t.Fatalf("Failed to set environment variable: %v", err)
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	err := os.Unsetenv(key)
	if err != nil {
		t.Fatalf("Failed to unset environment variable: %v", err)
	}
}

func saveConfig(t *testing.T, config *Config, configPath string) {
	t.Helper()
	if err := save(config, configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
}

func loadConfig(t *testing.T) *Config {
	t.Helper()
	config, err := Load()
	if err != nil {
		t.Fatalf("Loading of config failed: %v", err)
	}
	return config
}

// Removes any env vars with the FILMSTRIP_CONFIG prefix to ensure test isolation
func cleanupEnvVars(t *testing.T) {
	t.Helper()

	for _, envVar := range os.Environ() {
		if key := strings.Split(envVar, "=")[0]; strings.HasPrefix(key, "FILMSTRIP_CONFIG") {
			unsetEnv(t, key)
		}
	}
}
