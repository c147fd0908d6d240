package hato

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hato-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// It is the default for new arenas.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogBufferCreated logs the lazy creation of a shape buffer.
func (l *Logger) LogBufferCreated(index int, typ string, size, align int) {
	l.Debug("shape buffer created",
		"buffer", index,
		"type", typ,
		"size", size,
		"align", align,
	)
}

// LogBufferGrown logs a growth-induced reallocation of a shape buffer.
func (l *Logger) LogBufferGrown(index int, typ string, capacity int) {
	l.Debug("shape buffer grown",
		"buffer", index,
		"type", typ,
		"capacity", capacity,
	)
}
