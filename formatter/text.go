package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/mpattadkal/baxi/core"
)

// TextFormatter formats log records as human-readable text. It is the
// default format of the package-level logger before Init has run.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatRecord(record *core.Record, buf *bytes.Buffer) {
	f.formatToBuffer(record, buf)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel:    " [DEBUG] ",
	core.InfoLevel:     " [INFO] ",
	core.WarnLevel:     " [WARNING] ",
	core.ErrorLevel:    " [ERROR] ",
	core.CriticalLevel: " [CRITICAL] ",
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(record *core.Record, buf *bytes.Buffer) {
	buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if record.Level >= core.DebugLevel && record.Level <= core.CriticalLevel {
		buf.WriteString(levelBrackets[record.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if record.Name != "" {
		buf.WriteString(record.Name)
		buf.WriteByte(' ')
	}

	if f.Verbose && record.Caller.Defined {
		buf.WriteString(record.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(record.Caller.Line))
		buf.WriteByte(' ')
	}

	buf.WriteString(record.Message)

	for _, field := range record.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
