// Package observability builds the structured loggers used by the eventtz
// command line.
package observability

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// LogFieldRunID is the field name for the run ID.
	LogFieldRunID = "run_id"
	// LogFieldCommand is the field name for the CLI command.
	LogFieldCommand = "command"
	// LogFieldTimezone is the field name for the forced timezone.
	LogFieldTimezone = "timezone"
	// LogFieldDuration is the field name for duration in milliseconds.
	LogFieldDuration = "duration_ms"
	// LogFieldErrorCode is the field name for error code.
	LogFieldErrorCode = "error_code"
)

// ParseLevel parses "debug", "info", "warn" or "error".
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level %q", level)
	}
	return l, nil
}

// NewLogger returns a logger writing to w in the given format ("text" or "json").
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: l}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.Errorf("invalid log format %q", format)
	}
}

// RunContext carries the structured fields shared by every log line of one
// CLI invocation.
type RunContext struct {
	RunID     string
	Command   string
	Timezone  string
	StartTime time.Time
	Logger    *slog.Logger
}

// NewRunContext creates a run context with a generated run ID.
func NewRunContext(logger *slog.Logger, command, timezone string) *RunContext {
	return &RunContext{
		RunID:     uuid.New().String(),
		Command:   command,
		Timezone:  timezone,
		StartTime: time.Now(),
		Logger:    logger,
	}
}

// WithFields returns a logger carrying the run fields plus attrs.
func (r *RunContext) WithFields(attrs ...slog.Attr) *slog.Logger {
	combined := r.baseAttrsAppended(attrs...)
	args := make([]any, len(combined))
	for i, attr := range combined {
		args[i] = attr
	}
	return r.Logger.With(args...)
}

// Info logs an info message.
func (r *RunContext) Info(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelInfo, msg, r.baseAttrsAppended(attrs...)...)
}

// Debug logs a debug message.
func (r *RunContext) Debug(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, r.baseAttrsAppended(attrs...)...)
}

// Error logs an error message with the error.
func (r *RunContext) Error(msg string, err error, attrs ...slog.Attr) {
	allAttrs := append(attrs, slog.String("error", err.Error()))
	r.Logger.LogAttrs(context.Background(), slog.LevelError, msg, r.baseAttrsAppended(allAttrs...)...)
}

// DurationMs returns the elapsed time in milliseconds.
func (r *RunContext) DurationMs() int64 {
	return time.Since(r.StartTime).Milliseconds()
}

func (r *RunContext) baseAttrsAppended(attrs ...slog.Attr) []slog.Attr {
	base := []slog.Attr{
		slog.String(LogFieldRunID, r.RunID),
		slog.String(LogFieldCommand, r.Command),
		slog.String(LogFieldTimezone, r.Timezone),
	}
	return append(base, attrs...)
}
