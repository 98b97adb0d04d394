package solver

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for the solver and verification edge.
// Algorithm packages never log; structured records enter only here.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps the given handler; a nil handler falls back to a
// text handler on stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger returns a Logger writing human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger returns a Logger writing JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a Logger that discards everything. It is the
// default throughout this package: the library is silent unless handed
// a logger.
func NoopLogger() *Logger {
	// A level no record reaches.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)})

	return &Logger{Logger: slog.New(handler)}
}

// With returns a Logger carrying the given attributes on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// WithAlgorithm tags records with the engine name.
func (l *Logger) WithAlgorithm(a Algorithm) *Logger {
	return l.With("algorithm", a.String())
}
