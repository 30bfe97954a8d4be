package handler

import (
	"context"
	"log/slog"

	"github.com/mpattadkal/baxi/core"
)

// SlogHandler adapts a Handler to log/slog.Handler, letting the async
// pipeline serve as a drop-in backend for standard library callers.
type SlogHandler struct {
	handler Handler
	name    string
	level   core.Level
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, name string, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		name:    name,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	rec := core.GetRecord()
	rec.Time = record.Time
	rec.Name = s.name
	rec.Level = slogLevelToCore(record.Level)
	rec.Message = record.Message

	// Add pre-configured attrs
	if len(s.attrs) > 0 {
		rec.Fields = append(rec.Fields, s.attrs...)
	}

	// Add record attrs
	record.Attrs(func(a slog.Attr) bool {
		rec.Fields = append(rec.Fields, slogAttrToField(s.group, a))
		return true
	})

	err := s.handler.Handle(rec)
	if rc, ok := s.handler.(Recycler); ok && rc.CanRecycleRecord() {
		core.PutRecord(rec)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slogAttrToField(s.group, a))
	}
	return &SlogHandler{
		handler: s.handler,
		name:    s.name,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]core.Field, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		name:    s.name,
		level:   s.level,
		attrs:   newAttrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// coreLevelToSlog converts a core.Level to a slog.Level.
func coreLevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.CriticalLevel:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prepending the group prefix if present.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Type: core.StringType, Str: a.Value.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()}
	case slog.KindFloat64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()}
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: val}
	case slog.KindTime:
		return core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	}
}

// SlogForwarder is a sink that re-emits accepted records through the
// process-wide slog default logger. It is the propagation path: when
// the pipeline is initialized with Propagate, records flow onward to
// whatever handler the host application installed on slog.
type SlogForwarder struct {
	level core.Level
}

// NewSlogForwarder creates a forwarding sink with the given threshold.
func NewSlogForwarder(level core.Level) *SlogForwarder {
	return &SlogForwarder{level: level}
}

// Handle forwards the record to slog.Default.
func (f *SlogForwarder) Handle(record *core.Record) error {
	if record.Level < f.level {
		return nil
	}

	attrs := make([]any, 0, len(record.Fields)*2+1)
	attrs = append(attrs, slog.String("name", record.Name))
	for _, field := range record.Fields {
		attrs = append(attrs, slog.String(field.Key, field.StringValue()))
	}
	slog.Default().Log(context.Background(), coreLevelToSlog(record.Level), record.Message, attrs...)
	return nil
}

// CanRecycleRecord returns true because forwarding completes synchronously.
func (f *SlogForwarder) CanRecycleRecord() bool {
	return true
}

// Close is a no-op; the slog default logger is not owned.
func (f *SlogForwarder) Close() error {
	return nil
}
