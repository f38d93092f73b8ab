package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog logger so call sites don't depend on the
// logging backend directly.
type Logger struct {
	zerolog.Logger
}

// New returns a console logger writing to w. Debug enables debug-level
// output.
func New(debug bool, w io.Writer) *Logger {
	level := zerolog.InfoLevel

	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()

	return &Logger{l}
}

// NewConsole returns a logger writing to stdout.
func NewConsole(debug bool) *Logger {
	return New(debug, os.Stdout)
}

// NewErrorConsole returns a logger writing to stderr, for use before the
// main logger is configured.
func NewErrorConsole(debug bool) *Logger {
	return New(debug, os.Stderr)
}
