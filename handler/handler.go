package handler

import (
	"github.com/mpattadkal/baxi/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log record
	Handle(record *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is an optional interface handlers implement to tell the
// caller whether a record may be returned to the pool immediately
// after Handle returns. Synchronous sinks answer true; the queue
// handler answers false because its listener consumes the record
// after Handle has returned.
type Recycler interface {
	CanRecycleRecord() bool
}

// StatsProvider is an optional interface for handlers that track
// dropped/blocked/processed counters.
type StatsProvider interface {
	Stats() Snapshot
}
