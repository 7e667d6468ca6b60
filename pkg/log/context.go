package log

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type contextKey struct{}

var loggerContextKey = contextKey{}

// SetContextLogger attaches the logger to the context. When the context
// carries a valid OpenTelemetry span, the logger is wrapped in a SpanLogger
// so log entries are mirrored to the span. A nil logger becomes a
// NoopLogger.
func SetContextLogger(ctx context.Context, lg Logger) context.Context {
	if lg == nil {
		lg = NewNoopLogger()
	}

	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return context.WithValue(ctx, loggerContextKey, lg)
	}

	ser := NewOtelSpanEventRecorder(span)
	lg = NewSpanLogger(lg, ser)

	return context.WithValue(ctx, loggerContextKey, lg)
}

// FromContext returns the logger stored in the context, or a NoopLogger if
// none was set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return l
	}
	return NewNoopLogger()
}
