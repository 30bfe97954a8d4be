// Package core defines the shared types used across the baxi logging
// pipeline.
//
// It provides the Level type for severity ordering (DEBUG < INFO <
// WARNING < ERROR < CRITICAL), the Record type that represents a single
// log event, and the Field type for zero-allocation structured
// key-value pairs.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get a Record with GetRecord and must return
// it with PutRecord once the handler has consumed it. The pool
// pre-allocates the Fields slice with capacity 8, which covers most
// log calls without triggering a slice growth.
package core
