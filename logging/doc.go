// Package logging is the centralized configuration surface of the baxi
// logging pipeline.
//
// Init wires the whole graph from a single Config value: two JSON
// formatters (compact for the app log, verbose with call-site keys for
// everything else), the INFO-exact filter, the file and console sinks,
// and one bounded queue with a single listener goroutine in front of
// them. Severity-ordered records are routed exhaustively and
// disjointly: INFO lands in logs/app.log, WARNING and above in
// logs/errors.log, and — when the level is DEBUG — every record also
// lands in logs/debug.log.
//
// The logs directory must exist before Init runs; a missing directory
// is a fatal configuration error, not something the pipeline creates
// on the fly.
//
// Typical use:
//
//	if _, err := logging.Init(logging.Config{AppName: "baxi", Level: logger.InfoLevel, Console: true}); err != nil {
//		log.Fatal(err)
//	}
//	defer logging.Shutdown()
//
//	logger.Info("ready", logger.Int("port", 8080))
package logging
