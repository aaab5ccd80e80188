// Package logging provides structured logging for rp built on log/slog.
// Diagnostics go to the secondary stream (stderr by default); silent
// mode swaps the output writer for io.Discard so the primary document
// output is never polluted.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel represents different log levels.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a --log-level flag value onto a LogLevel, defaulting
// to info for unknown values.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is the structured logging interface used throughout rp.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
}

// Config holds logger configuration.
type Config struct {
	Level  LogLevel
	Output io.Writer
	Silent bool
}

// DefaultConfig returns the default logger configuration writing text
// diagnostics to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a structured logger from config. Silent mode
// discards all diagnostic output.
func NewLogger(config *Config) Logger {
	if config == nil {
		config = DefaultConfig()
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	if config.Silent {
		output = io.Discard
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: slogLevel(config.Level),
	})

	return &slogLogger{logger: slog.New(handler)}
}

// NewNopLogger returns a logger that discards everything, for tests and
// silent mode call sites that need a Logger value.
func NewNopLogger() Logger {
	return NewLogger(&Config{Silent: true})
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *slogLogger) Debug(msg string, fields ...interface{}) {
	l.logger.Debug(msg, fields...)
}

func (l *slogLogger) Info(msg string, fields ...interface{}) {
	l.logger.Info(msg, fields...)
}

func (l *slogLogger) Warn(msg string, fields ...interface{}) {
	l.logger.Warn(msg, fields...)
}

func (l *slogLogger) Error(err error, msg string, fields ...interface{}) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	}
	l.logger.Error(msg, fields...)
}

func (l *slogLogger) With(fields ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(fields...)}
}
