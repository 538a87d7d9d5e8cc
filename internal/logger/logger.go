// Package logger provides structured logging with console and optional file output.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog for structured logging.
type Logger struct {
	zerolog.Logger
}

// New creates a logger with the given level and optional file output.
// An unknown level falls back to info.
func New(level string, logFile string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"},
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, err
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}

	multi := zerolog.MultiLevelWriter(writers...)

	l := zerolog.New(multi).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}, nil
}

// Global is the global logger instance for convenience.
var Global *Logger

// Init initializes the global logger.
func Init(level string, logFile string) error {
	l, err := New(level, logFile)
	if err != nil {
		return err
	}
	Global = l
	return nil
}

// Get returns the global logger.
// Returns a no-op logger if not initialized.
func Get() *Logger {
	if Global == nil {
		noop := zerolog.Nop()
		return &Logger{noop}
	}
	return Global
}

// Info logs an info message using the global logger.
func Info(msg string) {
	if Global != nil {
		Global.Info().Msg(msg)
	}
}

// Warn logs a warning using the global logger.
func Warn(msg string) {
	if Global != nil {
		Global.Warn().Msg(msg)
	}
}

// Error logs an error message using the global logger.
func Error(msg string, err error) {
	if Global != nil {
		Global.Error().Err(err).Msg(msg)
	}
}

// Debug logs a debug message using the global logger.
func Debug(msg string) {
	if Global != nil {
		Global.Debug().Msg(msg)
	}
}
