package datakit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with datakit-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogGenerate logs a dataset generation run.
func (l *Logger) LogGenerate(ctx context.Context, samples, dims, clusters int, seed int64, dest string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"samples", samples,
			"dims", dims,
			"clusters", clusters,
			"seed", seed,
			"dest", dest,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset generated",
			"samples", samples,
			"dims", dims,
			"clusters", clusters,
			"seed", seed,
			"dest", dest,
		)
	}
}

// LogConvert logs an ARFF conversion.
func (l *Logger) LogConvert(ctx context.Context, src, dest string, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "convert failed",
			"src", src,
			"dest", dest,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset converted",
			"src", src,
			"dest", dest,
			"rows", rows,
			"cols", cols,
		)
	}
}

// LogDescribe logs a dataset inspection.
func (l *Logger) LogDescribe(ctx context.Context, src string, rows, cols uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "describe failed",
			"src", src,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dataset described",
			"src", src,
			"rows", rows,
			"cols", cols,
		)
	}
}
