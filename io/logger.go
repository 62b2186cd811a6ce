package toolio

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatTagged LogFormat = iota // [INFO] message
	LogFormatCaller                  // INFO:launcher:42 message
	LogFormatPlain                   // message
)

// Logger writes leveled messages to an IOManager.
// Fatal only logs; deciding to exit is left to the caller.
type Logger struct {
	io           *IOManager
	format       LogFormat
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
}

// NewLogger creates a new logger bound to the given IOManager
func NewLogger(m *IOManager) *Logger {
	return &Logger{
		io:           m,
		format:       LogFormatTagged,
		minLevel:     LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithLevel drops messages below level
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// ErrorsToStderr controls whether warnings and worse go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	l.output(level, fmt.Sprintf(format, args...))
}

// output must be called directly from an exported method so the caller
// frame used by LogFormatCaller is the logger's caller.
func (l *Logger) output(level LogLevel, msg string) {
	if level < l.minLevel {
		return
	}
	var b strings.Builder
	if l.withTime {
		b.WriteString(time.Now().Format(l.timeFormat))
		b.WriteByte(' ')
	}
	switch l.format {
	case LogFormatTagged:
		b.WriteString("[" + level.String() + "] ")
	case LogFormatCaller:
		b.WriteString(level.String())
		b.WriteByte(':')
		b.WriteString(callerTag(3))
		b.WriteByte(' ')
	case LogFormatPlain:
	}
	b.WriteString(msg)

	line := b.String()
	if level >= LevelError {
		line = l.io.Colorize(line, "31")
	} else if level == LevelWarning {
		line = l.io.Colorize(line, "33")
	}
	fmt.Fprintln(l.selectWriter(level), line)
}

// callerTag renders "file:line" for the frame skip levels up, with the file
// reduced to its base name minus the .go suffix.
func callerTag(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???:0"
	}
	name := strings.TrimSuffix(filepath.Base(file), ".go")
	return name + ":" + strconv.Itoa(line)
}

// selectWriter chooses stdout or stderr based on log level and configuration
func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.output(LevelDebug, fmt.Sprintf(format, args...)) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.output(LevelInfo, fmt.Sprintf(format, args...)) }

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.output(LevelWarning, fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.output(LevelError, fmt.Sprintf(format, args...)) }

// Fatal logs a fatal message. It does not exit.
func (l *Logger) Fatal(format string, args ...any) { l.output(LevelFatal, fmt.Sprintf(format, args...)) }
