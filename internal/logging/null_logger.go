package logging

// NullLogger discards all log messages. It is the default logger for
// library callers that do not wire one up.
// Safe for concurrent use by multiple goroutines.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose is a no-op.
func (l *NullLogger) Verbose(string, ...interface{}) {}

// Info is a no-op.
func (l *NullLogger) Info(string, ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(string, ...interface{}) {}
