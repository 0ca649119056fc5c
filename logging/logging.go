// Package logging builds the zerolog loggers used for call tracing.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/poset/config"
)

// New returns a logger writing to w as described by cfg.
// With tracing disabled the logger discards everything.
func New(cfg config.Config, w io.Writer) (zerolog.Logger, error) {
	if !cfg.Trace {
		return zerolog.Nop(), nil
	}
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	lvl, _ := cfg.Level()

	out := w
	if cfg.LogFormat == config.FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Component returns l tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// isTerminal reports whether w is a terminal; colors are only used there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
