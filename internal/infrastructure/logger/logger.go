package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-booking/internal/config"
)

// New creates a zerolog.Logger configured for the hotel client. Logs go to
// stderr so command output on stdout stays machine readable.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(cfg, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// NewWithWriter is New with an explicit sink.
func NewWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger().
		Level(parseLevel(cfg.LogLevel))
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
