package imagematch

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with imagematch-specific context.
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

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// LogTrain logs a training run.
func (l *Logger) LogTrain(ctx context.Context, views, accepted int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "train failed",
			"views", views,
			"accepted", accepted,
			"error", err,
		)
		return
	}
	if accepted < views {
		l.WarnContext(ctx, "train completed with rejected views",
			"views", views,
			"accepted", accepted,
			"rejected", views-accepted,
		)
		return
	}
	l.InfoContext(ctx, "train completed",
		"views", views,
	)
}

// LogRejectedView logs a training view that produced no sample.
func (l *Logger) LogRejectedView(ctx context.Context, index int, outcome ViewOutcome) {
	l.DebugContext(ctx, "view rejected",
		"index", index,
		"reason", outcome.String(),
	)
}

// LogScore logs a scored query point.
func (l *Logger) LogScore(x, y, score int, err error) {
	if err != nil {
		l.Debug("score skipped",
			"x", x,
			"y", y,
			"error", err,
		)
		return
	}
	l.Debug("score completed",
		"x", x,
		"y", y,
		"score", score,
	)
}
