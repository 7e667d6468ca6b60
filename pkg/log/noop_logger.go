package log

var _ Logger = NoopLogger{}

// NoopLogger discards every log message. It is the safe default wherever a
// Logger is required but none was provided, and keeps test output quiet.
type NoopLogger struct{}

// NewNoopLogger creates a NoopLogger.
func NewNoopLogger() Logger {
	return NoopLogger{}
}

func (n NoopLogger) Debug(msg string, keysAndValues ...any) {}
func (n NoopLogger) Info(msg string, keysAndValues ...any)  {}
func (n NoopLogger) Warn(msg string, keysAndValues ...any)  {}
func (n NoopLogger) Error(msg string, keysAndValues ...any) {}
func (n NoopLogger) Fatal(msg string, keysAndValues ...any) {}

// WithKV returns the same NoopLogger.
func (n NoopLogger) WithKV(key string, value any) Logger { return n }

// GetAllKV returns an empty slice.
func (n NoopLogger) GetAllKV() []any { return []any{} }

// WithName returns the same NoopLogger.
func (n NoopLogger) WithName(name string) Logger { return n }

// Name always returns "noop".
func (n NoopLogger) Name() string { return "noop" }

// AddCallerSkip returns the same NoopLogger.
func (n NoopLogger) AddCallerSkip(skip int) Logger { return n }
