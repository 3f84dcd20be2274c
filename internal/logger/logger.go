// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. Development mode writes human readable
// lines; anything else writes JSON.
func Init(level string, development bool) {
	var w io.Writer = os.Stdout
	if development {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	log = zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// SetOutput replaces the writer, keeping the current level. Used by tests.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Get() *zerolog.Logger { return &log }

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
