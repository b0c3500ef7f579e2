package slogx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type Logger struct {
	h slog.Handler
}

func New(h slog.Handler) *Logger {
	return &Logger{h: h}
}

// Handler returns the underlying handler so callers can build slog.Logger on top.
func (l *Logger) Handler() slog.Handler {
	return l.h
}

func (l *Logger) With(attrs ...slog.Attr) *Logger {
	return &Logger{h: l.h.WithAttrs(attrs)}
}

func (l *Logger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelInfo, msg, attrs...)
}

func (l *Logger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelDebug, msg, attrs...)
}

func (l *Logger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelWarn, msg, attrs...)
}

func (l *Logger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelError, msg, attrs...)
}

func (l *Logger) Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}

	slog.New(l.h).LogAttrs(ctx, level, msg, attrs...)
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("unknown log level %q", s)
}

const errKey = "err"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(errKey, "")
	}

	return slog.Any(errKey, err)
}

func NoteID(id string) slog.Attr {
	return slog.String("note_id", id)
}

func Folder(name string) slog.Attr {
	return slog.String("folder", name)
}
