// Package logger provides the diagnostic sink used across sparrow.
//
// The core packages (engine, transport, server) only ever see the ILogger
// interface; the concrete backend is chosen by the process bootstrap. This
// keeps the data path free of any logging dependency.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// --------------------------------------------------------------------------
// Sink Interface
// --------------------------------------------------------------------------

// ILogger is the diagnostic sink injected into every component. Writes are
// fire-and-forget; implementations must be safe for concurrent use.
type ILogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// --------------------------------------------------------------------------
// Log Levels
// --------------------------------------------------------------------------

// LogLevel controls which messages a sink lets through.
type LogLevel int8

const (
	LevelError LogLevel = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// ParseLevel converts a string level to a LogLevel.
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
}

// --------------------------------------------------------------------------
// Standard Logger
// --------------------------------------------------------------------------

// stdLogger implements ILogger with level filtering and custom formatting
// on top of the standard log package.
type stdLogger struct {
	name   string
	level  LogLevel
	logger *log.Logger
}

// New creates an ILogger writing to stdout, tagged with a component name.
func New(name string, level LogLevel) ILogger {
	return &stdLogger{
		name:   name,
		level:  level,
		logger: log.New(os.Stdout, "", log.Ldate|log.Ltime),
	}
}

func (l *stdLogger) Debugf(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		l.log("DEBUG", format, args...)
	}
}

func (l *stdLogger) Infof(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		l.log("INFO", format, args...)
	}
}

func (l *stdLogger) Warningf(format string, args ...interface{}) {
	if l.level >= LevelWarning {
		l.log("WARN", format, args...)
	}
}

func (l *stdLogger) Errorf(format string, args ...interface{}) {
	if l.level >= LevelError {
		l.log("ERROR", format, args...)
	}
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *stdLogger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-15s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Nop Logger
// --------------------------------------------------------------------------

// nopLogger discards everything. Used by tests and benchmarks.
type nopLogger struct{}

// NewNop creates a sink that drops all messages.
func NewNop() ILogger {
	return nopLogger{}
}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
