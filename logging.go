package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger = newLogger(os.Stderr, "WARN")

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newLogger builds a text logger. An unknown level falls back to WARN so the
// progress lines on stdout stay the only normal output.
func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func setupLogging(level string) {
	defaultLogger = newLogger(os.Stderr, level)
	slog.SetDefault(defaultLogger)
}

// withComponent returns a logger with the component field set.
func withComponent(name string) *slog.Logger {
	return defaultLogger.With(slog.String("component", name))
}
