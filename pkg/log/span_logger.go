package log

var _ Logger = SpanLogger{}

// SpanLogger wraps another logger and mirrors every log entry to a trace
// span through a SpanEventRecorder, so log lines and traces can be
// correlated.
type SpanLogger struct {
	lg  Logger
	ser SpanEventRecorder
}

// NewSpanLogger creates a SpanLogger around lg that records events to ser.
// The wrapped logger's caller skip is incremented to account for the
// SpanLogger frame.
func NewSpanLogger(lg Logger, ser SpanEventRecorder) Logger {
	return &SpanLogger{
		lg:  lg.AddCallerSkip(1),
		ser: ser,
	}
}

// Debug logs to both the wrapped logger and the span.
func (sl SpanLogger) Debug(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.withLogContext(LevelDebug, keysAndValues)...)
	sl.lg.Debug(msg, sl.withTraceContext(keysAndValues)...)
}

// Info logs to both the wrapped logger and the span.
func (sl SpanLogger) Info(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.withLogContext(LevelInfo, keysAndValues)...)
	sl.lg.Info(msg, sl.withTraceContext(keysAndValues)...)
}

// Warn logs to both the wrapped logger and the span.
func (sl SpanLogger) Warn(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.withLogContext(LevelWarn, keysAndValues)...)
	sl.lg.Warn(msg, sl.withTraceContext(keysAndValues)...)
}

// Error logs to the wrapped logger and records an error event on the span.
func (sl SpanLogger) Error(msg string, keysAndValues ...any) {
	sl.ser.RecordError(msg, sl.withLogContext(LevelError, keysAndValues)...)
	sl.lg.Error(msg, sl.withTraceContext(keysAndValues)...)
}

// Fatal logs to the wrapped logger and records an error event on the span.
func (sl SpanLogger) Fatal(msg string, keysAndValues ...any) {
	sl.ser.RecordError(msg, sl.withLogContext(LevelFatal, keysAndValues)...)
	sl.lg.Fatal(msg, sl.withTraceContext(keysAndValues)...)
}

// WithKV returns a new SpanLogger with the key-value pair added to the
// wrapped logger.
func (sl SpanLogger) WithKV(key string, value any) Logger {
	return SpanLogger{
		lg:  sl.lg.WithKV(key, value),
		ser: sl.ser,
	}
}

// GetAllKV returns the persistent key-value pairs of the wrapped logger.
func (sl SpanLogger) GetAllKV() []any {
	return sl.lg.GetAllKV()
}

// WithName returns a new SpanLogger with the name set on the wrapped logger.
func (sl SpanLogger) WithName(name string) Logger {
	return SpanLogger{
		lg:  sl.lg.WithName(name),
		ser: sl.ser,
	}
}

// Name returns the name of the wrapped logger.
func (sl SpanLogger) Name() string {
	return sl.lg.Name()
}

// AddCallerSkip returns a new SpanLogger with increased caller skip on the
// wrapped logger.
func (sl SpanLogger) AddCallerSkip(skip int) Logger {
	return SpanLogger{
		lg:  sl.lg.AddCallerSkip(skip),
		ser: sl.ser,
	}
}

// withTraceContext prepends the span's trace and span IDs so log lines can
// be matched to the trace.
func (sl SpanLogger) withTraceContext(keysAndValues []any) []any {
	return append([]any{
		"traceId", sl.ser.TraceID(),
		"spanId", sl.ser.SpanID(),
	}, keysAndValues...)
}

// withLogContext builds the attribute list for a span event: the level and
// component name first, then the wrapped logger's persistent pairs, then the
// call-site pairs.
func (sl SpanLogger) withLogContext(level Level, keysAndValues []any) []any {
	full := append([]any{
		"level", string(level),
		"component", sl.lg.Name(),
	}, sl.lg.GetAllKV()...)
	return append(full, keysAndValues...)
}
