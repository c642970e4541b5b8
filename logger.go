package cbir

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with cbir-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithVariant tags the logger with the retrieval variant (e.g. "chroma").
func (l *Logger) WithVariant(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", name),
	}
}

// WithN adds an n (result count) field to the logger.
func (l *Logger) WithN(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRank logs a finished ranking run.
func (l *Logger) LogRank(ctx context.Context, n, scanned, skipped int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rank failed",
			"n", n,
			"scanned", scanned,
			"error", err,
		)
		return
	}

	if skipped > 0 {
		l.WarnContext(ctx, "rank completed with skipped candidates",
			"n", n,
			"scanned", scanned,
			"skipped", skipped,
			"elapsed", elapsed,
		)
	} else {
		l.DebugContext(ctx, "rank completed",
			"n", n,
			"scanned", scanned,
			"elapsed", elapsed,
		)
	}
}

// LogCandidateSkipped logs a candidate excluded from ranking.
func (l *Logger) LogCandidateSkipped(ctx context.Context, err *CandidateError) {
	l.WarnContext(ctx, "skipping candidate",
		"ordinal", err.Ordinal,
		"id", err.ID,
		"error", err.Err,
	)
}

// LogCacheLoad logs the outcome of loading a feature cache.
func (l *Logger) LogCacheLoad(ctx context.Context, name string, rows, dim int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "feature cache load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "feature cache loaded",
			"name", name,
			"rows", rows,
			"dimension", dim,
		)
	}
}
