package log

// Logger is the structured logging interface used across the module.
// Methods accept a message followed by alternating key-value pairs
// (e.g. "scheme", "personal", "signer", addr).
type Logger interface {
	// Debug logs low-level detail useful during development.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine progress and state changes.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations that are not errors.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that need attention.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and may terminate the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger that carries the key-value pair on every
	// future log entry.
	WithKV(key string, value any) Logger
	// GetAllKV returns the persistent key-value pairs carried by this logger.
	GetAllKV() []any
	// WithName returns a logger named after a component or module.
	WithName(name string) Logger
	// Name returns the logger's name.
	Name() string
	// AddCallerSkip returns a logger that skips extra stack frames when
	// reporting the log source. Implementations that cannot honor the skip
	// return themselves.
	AddCallerSkip(skip int) Logger
}

// Level is the severity of a log message.
type Level string

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = "debug"
	// LevelInfo is for informational messages.
	LevelInfo Level = "info"
	// LevelWarn is for potential issues.
	LevelWarn Level = "warn"
	// LevelError is for failures.
	LevelError Level = "error"
	// LevelFatal is for unrecoverable failures.
	LevelFatal Level = "fatal"
)

// SpanEventRecorder records events and errors to a trace span.
type SpanEventRecorder interface {
	// TraceID returns the trace ID of the span.
	TraceID() string
	// SpanID returns the span ID of the span.
	SpanID() string

	// RecordEvent records an event with alternating key-value attributes.
	RecordEvent(name string, keysAndValues ...any)
	// RecordError records an error event with alternating key-value attributes.
	RecordError(name string, keysAndValues ...any)
}
