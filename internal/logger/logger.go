// Package logger is the small leveled logging facade shared by appdash
// components. Callers depend on the Logger interface, never on a concrete
// sink, so tests can capture output and the TUI can silence it.
package logger

import (
	"fmt"
	"log"
	"os"
)

// DebugEnv is the environment variable that turns on debug output.
const DebugEnv = "APPDASH_DEBUG"

// Logger is the leveled logging interface. Methods follow fmt.Printf
// conventions.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// envLogger writes to the standard log package. Debug lines are
// suppressed unless APPDASH_DEBUG is set, so the dashboard stays quiet
// in normal use.
type envLogger struct {
	prefix string
}

// NewEnvLogger returns the stderr logger. A non-empty prefix such as
// "[poller]" labels every line.
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) emit(tag, format string, args ...any) {
	if tag != "" {
		format = tag + ": " + format
	}
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Debug(format string, args ...any) {
	if os.Getenv(DebugEnv) != "" {
		l.emit("", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...any)  { l.emit("", format, args...) }
func (l *envLogger) Warn(format string, args ...any)  { l.emit("WARN", format, args...) }
func (l *envLogger) Error(format string, args ...any) { l.emit("ERROR", format, args...) }

type noopLogger struct{}

// Noop returns a logger that drops everything. Used where log output
// would corrupt the alternate screen.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// LogMessage is one captured line.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger records messages so tests can assert on them.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger returns an empty capturing logger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args ...any) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...any) { l.record("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...any)  { l.record("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...any)  { l.record("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...any) { l.record("error", format, args...) }

// HasLevel reports whether any message was captured at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear drops the captured messages, keeping the backing slice.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger Logger = NewEnvLogger("")

// Default returns the process-wide logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
