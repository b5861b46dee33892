// Package logger is a thin slog facade shared by every package.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	current = slog.New(newHandler(os.Stderr, slog.LevelInfo))
)

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           charmlog.Level(level),
		Prefix:          "visitcap",
	})
}

// Init replaces the default logger with one writing to stderr at the given level.
func Init(level slog.Level) {
	InitWithWriter(os.Stderr, level)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(w io.Writer, level slog.Level) {
	l := slog.New(newHandler(w, level))
	mu.Lock()
	current = l
	mu.Unlock()
	slog.SetDefault(l)
}

// ParseLevel maps a config string to a slog level. Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L returns the active logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Debug(msg string, args ...any) { L().Log(context.Background(), slog.LevelDebug, msg, args...) }
func Info(msg string, args ...any)  { L().Log(context.Background(), slog.LevelInfo, msg, args...) }
func Warn(msg string, args ...any)  { L().Log(context.Background(), slog.LevelWarn, msg, args...) }
func Error(msg string, args ...any) { L().Log(context.Background(), slog.LevelError, msg, args...) }
