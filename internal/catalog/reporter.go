package catalog

import (
	"context"
	"errors"
	"log/slog"
)

// Reporter is the operator-facing diagnostic channel. Store and Form report
// every repository failure here before returning it to the caller.
type Reporter interface {
	Report(ctx context.Context, resource, op string, err error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, resource, op string, err error)

// Report calls f.
func (f ReporterFunc) Report(ctx context.Context, resource, op string, err error) {
	f(ctx, resource, op, err)
}

// statusError is implemented by failures that carry an HTTP status.
type statusError interface {
	StatusCode() int
}

// LogReporter returns a Reporter that writes failures to the given logger.
// A nil logger uses slog.Default().
func LogReporter(logger *slog.Logger) Reporter {
	return ReporterFunc(func(ctx context.Context, resource, op string, err error) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		attrs := []slog.Attr{
			slog.String("resource", resource),
			slog.String("op", op),
			slog.Any("error", err),
		}
		var se statusError
		if errors.As(err, &se) && se.StatusCode() != 0 {
			attrs = append(attrs, slog.Int("status", se.StatusCode()))
		}
		l.LogAttrs(ctx, slog.LevelError, "catalog request failed", attrs...)
	})
}

// discard drops every report. Used when no reporter is configured.
var discard = ReporterFunc(func(context.Context, string, string, error) {})
