package pathlist

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jmgilman/go/pathlist/errors"
)

// LogLevel represents different logging levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// slogLevel maps a LogLevel onto slog.
func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLogLevel parses "debug", "info", "warn" or "error".
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, errors.Newf(errors.CodeInvalidInput, "unknown log level %q", level)
	}
}

// Logger provides structured logging for Explorer operations.
// A nil *Logger and the zero value both discard everything.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a text logger writing to w at the given level.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	return &Logger{logger: slog.New(handler)}
}

// FromSlog wraps an existing slog.Logger.
func FromSlog(l *slog.Logger) *Logger {
	return &Logger{logger: l}
}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *Logger {
	return &Logger{}
}

func (l *Logger) enabled() bool {
	return l != nil && l.logger != nil
}

// Debug logs debug-level messages.
func (l *Logger) Debug(msg string, args ...any) {
	if l.enabled() {
		l.logger.Debug(msg, args...)
	}
}

// Info logs info-level messages.
func (l *Logger) Info(msg string, args ...any) {
	if l.enabled() {
		l.logger.Info(msg, args...)
	}
}

// Warn logs warning-level messages.
func (l *Logger) Warn(msg string, args ...any) {
	if l.enabled() {
		l.logger.Warn(msg, args...)
	}
}

// Error logs error-level messages.
func (l *Logger) Error(msg string, args ...any) {
	if l.enabled() {
		l.logger.Error(msg, args...)
	}
}

// With returns a logger with additional context fields.
func (l *Logger) With(args ...any) *Logger {
	if !l.enabled() {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithOperation returns a logger with operation context.
func (l *Logger) WithOperation(op Operation) *Logger {
	return l.With("operation", string(op))
}

// WithPath returns a logger with path context.
func (l *Logger) WithPath(p Path) *Logger {
	return l.With("path", p.String())
}

// Operation names an Explorer operation in log records.
type Operation string

const (
	OpList  Operation = "list"
	OpTree  Operation = "tree"
	OpCopy  Operation = "copy"
	OpMove  Operation = "move"
	OpMkdir Operation = "mkdir"
	OpTouch Operation = "touch"
	OpRm    Operation = "remove"
)

// logOperation records the outcome of an operation. Successes are logged at
// debug level, failures at warn.
func logOperation(logger *Logger, op Operation, p Path, start time.Time, count int, err error) {
	if !logger.enabled() {
		return
	}

	fields := []any{
		"operation", string(op),
		"path", p.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if count >= 0 {
		fields = append(fields, "count", count)
	}

	if err != nil {
		fields = append(fields,
			"error", err.Error(),
			"code", string(errors.GetCode(err)),
			"retryable", errors.IsRetryable(err),
		)
		logger.Warn("operation failed", fields...)
		return
	}
	logger.Debug("operation completed", fields...)
}
