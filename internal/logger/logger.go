// Package logger builds the zerolog loggers used for diagnostics.
// Callers pass stderr so that stdout carries only matched elements.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	JSONLoggingFormat    = "json"
	ConsoleLoggingFormat = "console"

	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
	LogLevelDisable = "disabled"
)

type Logger struct {
	zerolog.Logger
}

func NewWithWriter(level, format string, w io.Writer) Logger {
	var logger zerolog.Logger

	if format == JSONLoggingFormat {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	logger = logger.Level(ParseLevel(level)).With().Timestamp().Logger()

	return Logger{
		Logger: logger,
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelWarn, LogLevelWarning:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	case LogLevelDisable:
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// NewTestLogger returns a Logger backed by a nop zerolog instance.
func NewTestLogger() Logger {
	return Logger{Logger: zerolog.Nop()}
}

func NewBufferedTestLogger(w io.Writer) Logger {
	return Logger{Logger: zerolog.New(w)}
}
