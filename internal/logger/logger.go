package logger

import (
	"io"
	"log/slog"
	"os"
)

var log *slog.Logger

func init() {
	level := slog.LevelInfo
	if os.Getenv("NAME_DEBUG") == "true" {
		level = slog.LevelDebug
	}

	log = newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetOutput redirects all package-level logging to w.
func SetOutput(w io.Writer, level slog.Level) {
	log = newLogger(w, level)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}
