// Package logging builds the structured loggers used across vnote.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "vnote-debug.log"

// New returns a JSON logger writing to w at level, with timestamps.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Open returns a debug-level logger appending to path when enabled, or a
// disabled logger otherwise. The returned close func is never nil.
func Open(enabled bool, path string) (zerolog.Logger, func() error, error) {
	if !enabled {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	if path == "" {
		path = DebugLogPath
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, fmt.Errorf("creating debug log: %w", err)
	}

	l := New(f, zerolog.DebugLevel)
	l.Debug().Str("log_file", path).Msg("debug start")
	return l, func() error {
		l.Debug().Msg("debug end")
		return f.Close()
	}, nil
}

// Component tags l with the name of the component doing the logging.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
