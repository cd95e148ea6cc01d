package iohclustering

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// EvalLogger observes evaluations of a Problem. A benchmarking harness
// attaches one to record optimizer trajectories. The problem only notifies
// the logger; closing it is the caller's responsibility.
type EvalLogger interface {
	// Log is called once per successful evaluation with the running
	// evaluation count, the decision vector and its score.
	Log(evaluations int64, x []float64, y float64)

	// Close releases any resources held by the logger.
	Close() error
}

// WriterLogger is an EvalLogger that writes one line per evaluation to an
// io.Writer: the evaluation count, the score, then the decision vector,
// space-separated.
type WriterLogger struct {
	W io.Writer
}

// Log implements EvalLogger.
func (l *WriterLogger) Log(evaluations int64, x []float64, y float64) {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(evaluations, 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatFloat(y, 'g', -1, 64))
	for _, v := range x {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte('\n')
	fmt.Fprint(l.W, sb.String())
}

// Close implements EvalLogger. It closes the underlying writer if it is an
// io.Closer.
func (l *WriterLogger) Close() error {
	if c, ok := l.W.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Logger wraps slog.Logger with clustering-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithProblem adds a problem name field to the logger.
func (l *Logger) WithProblem(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("problem", name),
	}
}

// WithK adds a cluster count field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogEvaluate logs an evaluation.
func (l *Logger) LogEvaluate(evaluations int64, y float64, err error) {
	if err != nil {
		l.Error("evaluation failed",
			"evaluations", evaluations,
			"error", err,
		)
	} else {
		l.Debug("evaluation completed",
			"evaluations", evaluations,
			"value", y,
		)
	}
}

// LogDegenerateClusters logs clusters that received no points.
func (l *Logger) LogDegenerateClusters(evaluations int64, clusters []int) {
	l.Warn("degenerate clusters",
		"evaluations", evaluations,
		"clusters", clusters,
	)
}

// LogReset logs a problem reset.
func (l *Logger) LogReset(evaluations int64) {
	l.Debug("problem reset",
		"evaluations_discarded", evaluations,
	)
}
