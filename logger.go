package linear

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with list-specific helpers.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogExhausted logs a rejected insertion on a full pool.
func (l *Logger) LogExhausted(op string, count int) {
	l.Debug("insert rejected, no free slot",
		"op", op,
		"count", count,
	)
}

// LogClear logs the number of slots returned to the free chain.
func (l *Logger) LogClear(released int) {
	l.Debug("list cleared",
		"released", released,
	)
}

// LogReset logs a full rethreading of the arena.
func (l *Logger) LogReset(capacity int) {
	l.Debug("arena reset",
		"capacity", capacity,
	)
}
