// Package logging configures the zerolog logger. The TUI owns the terminal,
// so diagnostics go to a file instead of stderr.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New opens (or creates) the log file at path and returns a logger writing
// to it. If the file cannot be opened the returned logger discards
// everything: logging is never a reason for the app to fail.
func New(path, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop()
	}

	return zerolog.New(f).Level(lvl).With().Timestamp().Logger()
}
