package vecshard

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecshard-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLen adds a length field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// LogSplit logs a split operation.
func (l *Logger) LogSplit(at, leftLen, rightLen int) {
	l.Debug("split completed",
		"at", at,
		"left_len", leftLen,
		"right_len", rightLen,
	)
}

// LogMerge logs a merge operation.
func (l *Logger) LogMerge(tier MergeTier, length int, err error) {
	if err != nil {
		l.Debug("merge tier failed",
			"tier", tier.String(),
			"error", err,
		)
	} else {
		l.Debug("merge completed",
			"tier", tier.String(),
			"len", length,
		)
	}
}

// LogConvert logs a shard-to-slice conversion.
func (l *Logger) LogConvert(length int, reused bool) {
	l.Debug("convert completed",
		"len", length,
		"allocation_reused", reused,
	)
}
