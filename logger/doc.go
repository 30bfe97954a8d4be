// Package logger is the front-end of the baxi logging pipeline. Most
// application code only needs this package plus logging.Init.
//
// A Logger is immutable after construction — the name, level, fields
// and handler are set once via the Builder and never modified. This
// makes Logger safe for concurrent use without any locking on the read
// path. Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison.
//
// The package initializes a default Logger (synchronous text output to
// stdout at INFO) so simple programs can log with zero setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// logging.Init replaces the default with the queue-backed pipeline.
// Child loggers are derived with With (extra fields) and Named (dotted
// name suffix); both share the parent's handler:
//
//	apiLog := logger.Named("api").With(logger.String("request_id", id))
package logger
