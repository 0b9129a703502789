package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a component-tagged console logger. Level comes from
// LOG_LEVEL and defaults to info.
func New(component string) zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
