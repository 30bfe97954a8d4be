package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mpattadkal/baxi/core"
	"github.com/mpattadkal/baxi/formatter"
)

// StreamConfig holds configuration for a stream handler
type StreamConfig struct {
	// Writer is the output stream (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the minimum severity this sink accepts
	Level core.Level
	// Filter is an optional predicate applied after the level check
	Filter Filter
}

// StreamHandler writes formatted records synchronously to an io.Writer,
// typically the console. It carries its own severity threshold and
// optional filter, so it can sit behind a QueueHandler that leaves all
// filtering to its sinks.
type StreamHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	level           core.Level
	filter          Filter
	stats           *Stats
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(cfg StreamConfig) *StreamHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &StreamHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		level:     cfg.Level,
		filter:    cfg.Filter,
		stats:     NewStats(),
	}

	// Cache BufferFormatter for the handler-owned buffer fast path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}

	return h
}

// Accepts reports whether this sink's threshold and filter admit the record
func (h *StreamHandler) Accepts(record *core.Record) bool {
	if record.Level < h.level {
		return false
	}
	return h.filter == nil || h.filter(record)
}

// Handle formats and writes a record if the threshold and filter accept it
func (h *StreamHandler) Handle(record *core.Record) error {
	if !h.Accepts(record) {
		return nil
	}

	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatRecord(record, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		h.mu.Unlock()
		if err == nil {
			h.stats.IncrementProcessed()
		}
		return err
	}

	data, err := h.formatter.Format(record)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, err = h.writer.Write(data)
	h.mu.Unlock()
	if err == nil {
		h.stats.IncrementProcessed()
	}
	return err
}

// CanRecycleRecord returns true because writes complete before Handle returns
func (h *StreamHandler) CanRecycleRecord() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *StreamHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op for stream handlers; the writer is not owned
func (h *StreamHandler) Close() error {
	return nil
}
