package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mpattadkal/baxi/core"
	"github.com/mpattadkal/baxi/formatter"
	"github.com/mpattadkal/baxi/handler"
	"github.com/mpattadkal/baxi/logger"
)

// File names created under Config.Dir.
const (
	AppLogFile   = "app.log"
	ErrorLogFile = "errors.log"
	DebugLogFile = "debug.log"
)

// Config describes the full logging graph. It is passed by value into
// Init; there is no mutable package-level configuration to patch.
type Config struct {
	// AppName is the root logger name carried on every record.
	AppName string
	// Level is the root threshold, shared by the console sink.
	Level core.Level
	// DisableExisting closes pipelines installed by earlier Init calls.
	// When false, earlier pipelines stay open so loggers derived from
	// them keep working until Shutdown.
	DisableExisting bool
	// Propagate forwards accepted records onward to the slog default
	// logger in addition to the pipeline's own sinks.
	Propagate bool
	// Console attaches a stream sink writing to ConsoleWriter.
	Console bool
	// Dir is the log directory. It must already exist (default: "logs").
	Dir string
	// ConsoleWriter overrides the console destination (default: os.Stdout).
	ConsoleWriter io.Writer
	// QueueSize is the bounded queue capacity (default: 1000).
	QueueSize int
}

var (
	mu sync.Mutex
	// pipelines holds every queue handler installed by Init and not yet
	// closed, newest last. Only the newest backs the default logger.
	pipelines []*handler.QueueHandler
)

// Init builds the logging graph described by cfg, starts its listener
// and installs the resulting root logger as the process default.
//
// The graph is built in dependency order: formatters, then filters,
// then concrete sinks, then the queue dispatcher over them. Sink
// membership is decided here from the config values alone — the debug
// file sink exists only when Level is DEBUG, the console sink only when
// Console is set — so calling Init twice can never accumulate duplicate
// sinks: each call produces a fresh graph and retires the old root.
//
// Init fails, without side effects, when cfg.Dir does not exist.
func Init(cfg Config) (*logger.Logger, error) {
	if cfg.AppName == "" {
		cfg.AppName = "baxi"
	}
	if cfg.Dir == "" {
		cfg.Dir = "logs"
	}
	if cfg.ConsoleWriter == nil {
		cfg.ConsoleWriter = os.Stdout
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("log directory %q: %w", cfg.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log path %q is not a directory", cfg.Dir)
	}

	compact := formatter.NewJSONFormatter(formatter.Config{})
	verbose := formatter.NewJSONFormatter(formatter.Config{Verbose: true})

	var sinks []handler.Handler
	closeAll := func() {
		for _, s := range sinks {
			s.Close()
		}
	}

	// app.log only receives records at exactly INFO; WARNING and above
	// belong to errors.log.
	appSink, err := handler.NewFileHandler(handler.FileConfig{
		Filename:  filepath.Join(cfg.Dir, AppLogFile),
		Formatter: compact,
		Level:     core.InfoLevel,
		Filter:    handler.LevelExact(core.InfoLevel),
	})
	if err != nil {
		return nil, err
	}
	sinks = append(sinks, appSink)

	errSink, err := handler.NewFileHandler(handler.FileConfig{
		Filename:  filepath.Join(cfg.Dir, ErrorLogFile),
		Formatter: verbose,
		Level:     core.WarnLevel,
	})
	if err != nil {
		closeAll()
		return nil, err
	}
	sinks = append(sinks, errSink)

	if cfg.Level == core.DebugLevel {
		debugSink, err := handler.NewFileHandler(handler.FileConfig{
			Filename:  filepath.Join(cfg.Dir, DebugLogFile),
			Formatter: verbose,
			Level:     core.DebugLevel,
		})
		if err != nil {
			closeAll()
			return nil, err
		}
		sinks = append(sinks, debugSink)
	}

	if cfg.Console {
		sinks = append(sinks, handler.NewStreamHandler(handler.StreamConfig{
			Writer:    cfg.ConsoleWriter,
			Formatter: verbose,
			Level:     cfg.Level,
		}))
	}

	if cfg.Propagate {
		sinks = append(sinks, handler.NewSlogForwarder(cfg.Level))
	}

	queue := handler.NewQueueHandler(handler.QueueConfig{
		Sinks:     sinks,
		QueueSize: cfg.QueueSize,
	})

	root := logger.NewBuilder().
		WithHandler(queue).
		WithName(cfg.AppName).
		WithLevel(cfg.Level).
		WithCaller(true).
		Build()

	mu.Lock()
	if cfg.DisableExisting {
		for _, p := range pipelines {
			p.Close()
		}
		pipelines = pipelines[:0]
	}
	pipelines = append(pipelines, queue)
	mu.Unlock()

	logger.SetDefault(root)
	return root, nil
}

// Shutdown drains and closes every pipeline installed by Init. It is
// the process-exit hook: main defers it so queued records reach their
// sinks before the program terminates. Safe to call multiple times.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	var lastErr error
	for _, p := range pipelines {
		if err := p.Close(); err != nil {
			lastErr = err
		}
	}
	pipelines = pipelines[:0]
	return lastErr
}

// Stats returns the counters of the most recently installed pipeline,
// or a zero snapshot when Init has not run.
func Stats() handler.Snapshot {
	mu.Lock()
	defer mu.Unlock()

	if len(pipelines) == 0 {
		return handler.Snapshot{}
	}
	return pipelines[len(pipelines)-1].Stats()
}
