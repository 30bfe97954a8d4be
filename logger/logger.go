package logger

import (
	"fmt"
	"time"

	"github.com/mpattadkal/baxi/core"
	"github.com/mpattadkal/baxi/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	name          string
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	recycleRecord bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	name          string
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	recycleRecord bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for getCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycleRecord to avoid interface assertion on the hot path
	if rc, ok := h.(handler.Recycler); ok {
		b.recycleRecord = rc.CanRecycleRecord()
	} else {
		b.recycleRecord = false
	}
	return b
}

// WithName sets the logger name carried on every record
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables call-site information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		name:          b.name,
		level:         b.level,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		recycleRecord: b.recycleRecord,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	clone := *l
	clone.fields = newFields
	return &clone
}

// Named creates a new Logger whose records carry the given name, in the
// dotted child convention: a logger named "baxi" produces "baxi.api".
func (l *Logger) Named(name string) *Logger {
	clone := *l
	if l.name != "" {
		clone.name = l.name + "." + name
	} else {
		clone.name = name
	}
	return &clone
}

// Name returns the logger's name
func (l *Logger) Name() string {
	return l.name
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check - exit early BEFORE any allocations
	if level < l.level {
		return
	}

	l.log(level, msg, fields)
}

// log is the internal logging method that takes a pre-allocated slice
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	// Get record from pool AFTER level check
	record := core.GetRecord()
	record.Time = time.Now()
	record.Name = l.name
	record.Level = level
	record.Message = msg

	// Add logger's default fields
	if len(l.fields) > 0 {
		record.Fields = append(record.Fields, l.fields...)
	}

	// Add provided fields
	if len(fields) > 0 {
		record.Fields = append(record.Fields, fields...)
	}

	if l.includeCaller {
		record.Caller = core.GetCaller(l.callerSkip)
	}

	if err := l.handler.Handle(record); err != nil {
		return
	}

	// Return record to pool if the handler is done with it
	if l.recycleRecord {
		core.PutRecord(record)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if core.CriticalLevel < l.level {
		return
	}
	l.log(core.CriticalLevel, msg, fields)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if core.CriticalLevel < l.level {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
