package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/akirakitchen/backend/pkg/config"
)

// newLogger builds the process logger from server configuration.
// Format "console" gives human-readable output for development;
// everything else logs JSON.
func newLogger(cfg config.ServerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
