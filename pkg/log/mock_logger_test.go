package log_test

import "github.com/statelayer/sigil/pkg/log"

var _ log.Logger = &MockLogger{}

// MockLogger is a test double for the Logger interface. It captures the last
// log entry and tracks name, key-value pairs and caller skip so tests can
// verify how wrappers drive the logger.
type MockLogger struct {
	lastEntry MockLogEntry

	name          string
	keysAndValues []any
	callerSkip    int
}

// NewMockLogger creates a mock logger with default state.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		name:          "mock",
		keysAndValues: []any{},
	}
}

// MockLogEntry is a captured log entry.
type MockLogEntry struct {
	Level         log.Level
	Message       string
	KeysAndValues []any
}

func (ml *MockLogger) Debug(msg string, keysAndValues ...any) {
	ml.capture(log.LevelDebug, msg, keysAndValues...)
}

func (ml *MockLogger) Info(msg string, keysAndValues ...any) {
	ml.capture(log.LevelInfo, msg, keysAndValues...)
}

func (ml *MockLogger) Warn(msg string, keysAndValues ...any) {
	ml.capture(log.LevelWarn, msg, keysAndValues...)
}

func (ml *MockLogger) Error(msg string, keysAndValues ...any) {
	ml.capture(log.LevelError, msg, keysAndValues...)
}

func (ml *MockLogger) Fatal(msg string, keysAndValues ...any) {
	ml.capture(log.LevelFatal, msg, keysAndValues...)
}

func (ml *MockLogger) WithKV(key string, value any) log.Logger {
	ml.keysAndValues = append(ml.keysAndValues, key, value)
	return ml
}

func (ml *MockLogger) GetAllKV() []any { return ml.keysAndValues }

func (ml *MockLogger) WithName(name string) log.Logger {
	ml.name = name
	return ml
}

func (ml *MockLogger) Name() string { return ml.name }

func (ml *MockLogger) AddCallerSkip(skip int) log.Logger {
	ml.callerSkip += skip
	return ml
}

// CallerSkip returns the accumulated caller skip for verification.
func (ml *MockLogger) CallerSkip() int { return ml.callerSkip }

// LastEntry returns the most recently captured log entry.
func (ml *MockLogger) LastEntry() MockLogEntry { return ml.lastEntry }

func (ml *MockLogger) capture(level log.Level, msg string, keysAndValues ...any) {
	ml.lastEntry = MockLogEntry{
		Level:         level,
		Message:       msg,
		KeysAndValues: append(ml.keysAndValues, keysAndValues...),
	}
}
