package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a structured logger with sane defaults for a terminal tool.
// Diagnostics go to stderr so they never interleave with command feedback.
func New(appName, env string) zerolog.Logger {
	return NewWithOutput(appName, env, os.Stderr)
}

// NewWithOutput is New with an explicit sink.
func NewWithOutput(appName, env string, out io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    env == "production",
	}
	level := zerolog.InfoLevel
	if env == "development" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().
		Timestamp().
		Str("app", appName).
		Logger()
}
