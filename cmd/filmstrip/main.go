package main

import (
	"fmt"
	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/log"
	"github.com/saltkettle/filmstrip/internal/ui/tui"
	"github.com/saltkettle/filmstrip/internal/version"
	"os"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// It is unrecoverable if we cannot produce an application config
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialise logger
	logger, err := log.New(log.Config{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
	})
	if err != nil {
		// Probably should let the app continue without logging, but for now this is acceptable.
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	// Set the default global logger
	log.SetDefaultLogger(logger)

	// Optional path argument: a media file opens straight into the scrubber,
	// a directory opens the library view
	var target string
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	log.Info("Starting up Filmstrip", "version", version.GetVersion(), "build_time", version.GetBuildTime(), "target", target)

	if err := tui.Run(cfg, target); err != nil {
		log.Error("Unhandled error while running TUI", "error", err)
		os.Exit(1)
	}

	log.Info("Filmstrip shutting down.  Goodbye!")
}
