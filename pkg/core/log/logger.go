// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the main Logger type that provides structured
//              logging with contextual fields and configurable output.
//              A process-wide default logger is available via GetDefault.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields that are added to all log entries
	contextFields Fields

	mutex sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewTextFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := New()
	logger.level = config.Level
	if config.Output != nil {
		logger.output = config.Output
	}
	if config.Format == FormatJSON {
		logger.formatter = NewJSONFormatter()
	}
	logger.name = config.Name
	return logger
}

// WithField returns a child logger that includes the given field in all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a child logger that includes the given fields in all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	child := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: make(Fields, len(l.contextFields)+len(fields)),
	}
	for k, v := range l.contextFields {
		child.contextFields[k] = v
	}
	for k, v := range fields {
		child.contextFields[k] = v
	}
	return child
}

// SetLevel changes the minimum level of the logger
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Level returns the current minimum level of the logger
func (l *Logger) Level() Level {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.level
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level with an optional error value
func (l *Logger) Error(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// log builds an entry and writes it through the formatter
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if level < l.level {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		Err:       err,
		Fields:    make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fs := range fields {
		for k, v := range fs {
			entry.Fields[k] = v
		}
	}

	out, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.output.Write(out)
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMutex  sync.Mutex
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultOnce.Do(func() {
		defaultMutex.Lock()
		defer defaultMutex.Unlock()
		if defaultLogger == nil {
			defaultLogger = New()
		}
	})
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
	defaultOnce.Do(func() {})
}
