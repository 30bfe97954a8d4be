package handler

import (
	"github.com/mpattadkal/baxi/core"
)

// Filter is a predicate over a record. A sink with a filter only
// receives records for which the filter returns true. A nil Filter
// accepts everything.
type Filter func(record *core.Record) bool

// LevelExact returns a filter that accepts only records whose level
// equals lvl exactly, not "lvl or above". Used to keep WARNING and
// ERROR records out of the informational app log.
func LevelExact(lvl core.Level) Filter {
	return func(record *core.Record) bool {
		return record.Level == lvl
	}
}

// LevelAtLeast returns a filter that accepts records at lvl or above.
// Sinks already apply their Level threshold before the filter runs;
// this exists for composing stricter cut-offs on shared sinks.
func LevelAtLeast(lvl core.Level) Filter {
	return func(record *core.Record) bool {
		return record.Level >= lvl
	}
}
