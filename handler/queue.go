package handler

import (
	"sync"
	"time"

	"github.com/mpattadkal/baxi/core"
)

// QueueConfig holds configuration for a queue handler
type QueueConfig struct {
	// Sinks are the concrete downstream handlers. They must be fully
	// constructed before the queue handler starts; there is no deferred
	// resolution.
	Sinks []Handler
	// QueueSize is the capacity of the bounded queue (default: 1000)
	QueueSize int
	// Level is an advisory pre-filter on the producer side. Sinks
	// re-check their own thresholds and filters on the consumer side,
	// so this only saves queue slots (default: DebugLevel, pass all).
	Level core.Level
	// OverflowPolicy defines per-level behavior when the queue is full
	// (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout bounds how long the Block policy waits before
	// falling back to a synchronous write (default: 100ms)
	BlockTimeout time.Duration
}

// QueueHandler decouples record production from sink I/O. Producers
// enqueue onto a bounded channel; exactly one listener goroutine drains
// it and fans each record out to every sink whose threshold and filter
// accept it. Sink write failures never reach producers; they are
// counted in Stats and otherwise swallowed.
type QueueHandler struct {
	sinks          []Handler
	queue          chan *core.Record
	level          core.Level
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	stats          *Stats
	closed         chan struct{}
	closeOnce      sync.Once
	closeErr       error
	wg             sync.WaitGroup
}

// NewQueueHandler creates a queue handler over the given sinks and
// starts its listener goroutine.
func NewQueueHandler(cfg QueueConfig) *QueueHandler {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}

	h := &QueueHandler{
		sinks:          cfg.Sinks,
		queue:          make(chan *core.Record, cfg.QueueSize),
		level:          cfg.Level,
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		stats:          NewStats(),
		closed:         make(chan struct{}),
	}

	h.wg.Add(1)
	go h.listen()

	return h
}

// Handle enqueues a record, applying the overflow policy for its level
// when the queue is full. It never returns a sink error.
func (h *QueueHandler) Handle(record *core.Record) error {
	if record.Level < h.level {
		return nil
	}

	policy, ok := h.overflowPolicy[record.Level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case h.queue <- record:
			return nil
		default:
		}
		// Queue full: wait up to blockTimeout for a slot
		timer := time.NewTimer(h.blockTimeout)
		select {
		case h.queue <- record:
			timer.Stop()
			return nil
		case <-timer.C:
			// Timeout - fall back to a synchronous write
			h.stats.IncrementBlocked()
			h.dispatch(record)
			return nil
		case <-h.closed:
			timer.Stop()
			h.dispatch(record)
			return nil
		}

	case DropOldest:
		select {
		case h.queue <- record:
			return nil
		default:
		}
		// Queue full: evict the oldest queued record
		select {
		case old := <-h.queue:
			h.stats.IncrementDropped(old.Level)
			core.PutRecord(old)
		default:
		}
		select {
		case h.queue <- record:
			return nil
		default:
			// Still full, drop this one
			h.stats.IncrementDropped(record.Level)
			return nil
		}

	case DropNewest:
		fallthrough
	default:
		select {
		case h.queue <- record:
			return nil
		default:
			// Queue full - drop this record
			h.stats.IncrementDropped(record.Level)
			return nil
		}
	}
}

// CanRecycleRecord returns false because the listener consumes records
// after Handle has returned.
func (h *QueueHandler) CanRecycleRecord() bool {
	return false
}

// dispatch fans a record out to every sink. Each sink re-checks its
// own threshold and filter inside Handle. Write failures are counted
// and swallowed.
func (h *QueueHandler) dispatch(record *core.Record) {
	for _, sink := range h.sinks {
		if err := sink.Handle(record); err != nil {
			h.stats.IncrementWriteErrors()
		}
	}
	h.stats.IncrementProcessed()
}

// listen is the single consumer goroutine. It preserves queue arrival
// order per sink and, on close, drains every remaining record before
// returning.
func (h *QueueHandler) listen() {
	defer h.wg.Done()

	for {
		select {
		case record := <-h.queue:
			h.dispatch(record)
			core.PutRecord(record)
		case <-h.closed:
			for {
				select {
				case record := <-h.queue:
					h.dispatch(record)
					core.PutRecord(record)
				default:
					return
				}
			}
		}
	}
}

// Stats returns a snapshot of the current statistics
func (h *QueueHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close signals the listener, waits for the queue to drain completely,
// joins the goroutine and then closes all sinks. Idempotent.
func (h *QueueHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()

		for _, sink := range h.sinks {
			if err := sink.Close(); err != nil {
				h.closeErr = err
			}
		}
	})
	return h.closeErr
}
