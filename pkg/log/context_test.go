package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"

	"github.com/statelayer/sigil/pkg/log"
)

// TestContextLogger verifies context storage and retrieval of loggers, the
// NoopLogger default, and automatic SpanLogger wrapping when the context
// carries a valid span.
func TestContextLogger(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger, FromContext falls back to a NoopLogger.
	logger := log.FromContext(ctx)
	assert.NotNil(t, logger)

	_, isNoop := logger.(log.NoopLogger)
	assert.True(t, isNoop)

	// A stored logger round-trips through the context.
	logger = log.NewZapLogger(log.Config{})
	ctx = log.SetContextLogger(ctx, logger)

	logger = log.FromContext(ctx)
	assert.NotNil(t, logger)

	_, isZapLogger := logger.(*log.ZapLogger)
	assert.True(t, isZapLogger)

	// With a valid span in the context, the logger is wrapped.
	ctx = trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: [16]byte{1},
		SpanID:  [8]byte{1},
	}))
	ctx = log.SetContextLogger(ctx, logger)

	logger = log.FromContext(ctx)
	assert.NotNil(t, logger)

	_, isSpanLogger := logger.(*log.SpanLogger)
	assert.True(t, isSpanLogger)

	// A nil logger is replaced with a NoopLogger rather than stored.
	ctx = log.SetContextLogger(context.Background(), nil)
	_, isNoop = log.FromContext(ctx).(log.NoopLogger)
	assert.True(t, isNoop)
}
