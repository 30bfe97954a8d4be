package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/mpattadkal/baxi/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(record *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(record *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a log record into the given buffer.
	FormatRecord(record *core.Record, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// Verbose adds the call-site keys (pathname, lineno, funcName) to
	// every record. Used by the console and the debug/error file sinks.
	Verbose bool
	// TimestampFormat specifies the asctime layout (empty for the
	// default "2006-01-02 15:04:05,000")
	TimestampFormat string
}

// DefaultTimestampFormat is the layout used when Config.TimestampFormat
// is empty. It matches the comma-millisecond asctime shape.
const DefaultTimestampFormat = "2006-01-02 15:04:05,000"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
