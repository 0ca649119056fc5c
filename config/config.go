// Package config loads poset's runtime settings from the environment.
//
// Only ambient behavior is configurable; no setting can change the result of
// a poset operation.
//
//	POSET_TRACE       bool     emit one trace event per call     (default false)
//	POSET_LOG_LEVEL   string   zerolog level name                (default debug)
//	POSET_LOG_FORMAT  string   "console" or "json"               (default console)
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrBadFormat indicates an unsupported POSET_LOG_FORMAT value.
var ErrBadFormat = errors.New("config: unsupported log format")

// Config holds the environment-driven settings.
type Config struct {
	Trace     bool   `env:"POSET_TRACE"      envDefault:"false"`
	LogLevel  string `env:"POSET_LOG_LEVEL"  envDefault:"debug"`
	LogFormat string `env:"POSET_LOG_FORMAT" envDefault:"console"`
}

// Default returns the settings used when the environment is empty.
func Default() Config {
	return Config{Trace: false, LogLevel: zerolog.LevelDebugValue, LogFormat: FormatConsole}
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, c.LogFormat)
	}
}

// Level parses LogLevel into a zerolog.Level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: log level: %w", err)
	}

	return lvl, nil
}
