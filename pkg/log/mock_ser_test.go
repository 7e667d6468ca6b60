package log_test

// MockSpanEventRecorder is a test double for the SpanEventRecorder
// interface. It captures the last recorded event, prefixed with a "msg" key,
// and remembers whether an error was recorded.
type MockSpanEventRecorder struct {
	traceID           string
	spanID            string
	hasErr            bool
	lastEventMetadata []any
}

// NewMockSpanEventRecorder creates a mock with fixed trace and span IDs.
func NewMockSpanEventRecorder(traceID, spanID string) *MockSpanEventRecorder {
	return &MockSpanEventRecorder{
		traceID: traceID,
		spanID:  spanID,
	}
}

func (ser *MockSpanEventRecorder) TraceID() string { return ser.traceID }
func (ser *MockSpanEventRecorder) SpanID() string  { return ser.spanID }

func (ser *MockSpanEventRecorder) RecordEvent(name string, keysAndValues ...any) {
	ser.lastEventMetadata = append([]any{"msg", name}, keysAndValues...)
}

func (ser *MockSpanEventRecorder) RecordError(name string, keysAndValues ...any) {
	ser.hasErr = true
	ser.lastEventMetadata = append([]any{"msg", name}, keysAndValues...)
}

// LastEventMetadata returns the metadata of the most recent event.
func (ser *MockSpanEventRecorder) LastEventMetadata() []any { return ser.lastEventMetadata }

// HasError reports whether RecordError was called.
func (ser *MockSpanEventRecorder) HasError() bool { return ser.hasErr }
