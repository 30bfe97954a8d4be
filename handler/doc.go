// Package handler provides the Handler interface and the sinks and
// dispatcher of the async logging pipeline.
//
// The QueueHandler is the producer/consumer seam: application
// goroutines enqueue records onto a bounded channel and a single
// listener goroutine drains it, fanning each record out to the
// downstream sinks. Each sink re-checks the record against its own
// severity threshold and optional Filter before writing, so the queue
// handler's level is only an advisory pre-filter.
//
// When the queue is full, a per-level OverflowPolicy applies: DropNewest
// (default for DEBUG/INFO/WARNING), DropOldest, or Block with a timeout
// that falls back to a synchronous write (default for ERROR/CRITICAL).
// Low-priority records never stall the application while errors are not
// silently shed.
//
// Built-in sinks:
//
//   - StreamHandler writes formatted records to any io.Writer (default: stdout).
//   - FileHandler appends to a single file, with optional size-based
//     rotation and backup cleanup. The parent directory must exist.
//   - SlogForwarder re-emits records through slog.Default, the
//     propagation path toward the host application's own logging.
//
// SlogHandler runs the other direction: it adapts a Handler to
// log/slog.Handler so standard library callers can feed the pipeline.
// Do not combine it with a SlogForwarder on the same pipeline; that
// would forward records back into the queue they came from.
//
// All handlers track dropped, blocked, processed and write-error counts
// via the Stats type, which can be queried at runtime.
package handler
