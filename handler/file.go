package handler

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mpattadkal/baxi/core"
	"github.com/mpattadkal/baxi/formatter"
)

// FileConfig holds configuration for a file handler
type FileConfig struct {
	// Filename is the path to the log file. The parent directory must
	// already exist; a missing directory is a construction error, not
	// something the handler papers over.
	Filename string
	// Formatter to use (default: JSONFormatter)
	Formatter formatter.Formatter
	// Level is the minimum severity this sink accepts
	Level core.Level
	// Filter is an optional predicate applied after the level check
	Filter Filter
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of rotated files to retain (0 = keep all)
	MaxBackups int
}

// FileHandler appends formatted records to a single physical file.
// Writes go through a bufio.Writer that is flushed on every record so
// the file stays readable while the process runs; Close flushes, syncs
// and closes the file.
type FileHandler struct {
	filename        string
	file            *os.File
	bufWriter       *bufio.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	level           core.Level
	filter          Filter
	maxSize         int64
	maxBackups      int
	currentSize     int64
	stats           *Stats
	mu              sync.Mutex
	buf             bytes.Buffer
	closed          bool
}

// NewFileHandler opens filename in append mode and returns a handler
// writing to it. It fails when the file cannot be opened, which
// includes the parent directory not existing.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	h := &FileHandler{
		filename:    cfg.Filename,
		file:        file,
		bufWriter:   bufio.NewWriterSize(file, 4096),
		formatter:   cfg.Formatter,
		level:       cfg.Level,
		filter:      cfg.Filter,
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: info.Size(),
		stats:       NewStats(),
	}

	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}

	return h, nil
}

// Accepts reports whether this sink's threshold and filter admit the record
func (h *FileHandler) Accepts(record *core.Record) bool {
	if record.Level < h.level {
		return false
	}
	return h.filter == nil || h.filter(record)
}

// Handle formats and appends a record if the threshold and filter accept it
func (h *FileHandler) Handle(record *core.Record) error {
	if !h.Accepts(record) {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return fmt.Errorf("handler closed")
	}
	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	var n int
	var err error
	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatRecord(record, &h.buf)
		n, err = h.bufWriter.Write(h.buf.Bytes())
	} else {
		var data []byte
		data, err = h.formatter.Format(record)
		if err != nil {
			return err
		}
		n, err = h.bufWriter.Write(data)
	}
	if err != nil {
		return err
	}

	h.currentSize += int64(n)
	h.stats.IncrementProcessed()
	return h.bufWriter.Flush()
}

// rotateIfNeeded rotates the file when the size limit is reached
func (h *FileHandler) rotateIfNeeded() error {
	if h.maxSize <= 0 || h.currentSize < h.maxSize {
		return nil
	}

	if err := h.bufWriter.Flush(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", h.filename, timestamp)
	if err := os.Rename(h.filename, rotatedName); err != nil {
		// Reopen the original file so logging can continue
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		h.file = file
		h.bufWriter.Reset(file)
		return err
	}

	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	h.file = file
	h.bufWriter.Reset(file)
	h.currentSize = 0
	return nil
}

// cleanupOldBackups removes old rotated files beyond MaxBackups
func (h *FileHandler) cleanupOldBackups() {
	dir := filepath.Dir(h.filename)
	base := filepath.Base(h.filename)

	matches, err := filepath.Glob(filepath.Join(dir, base+".*"))
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > h.maxBackups {
		for _, file := range backups[:len(backups)-h.maxBackups] {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// CanRecycleRecord returns true because writes complete before Handle returns
func (h *FileHandler) CanRecycleRecord() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes, syncs and closes the underlying file. Idempotent.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.bufWriter.Flush(); err != nil {
		h.file.Close()
		return err
	}
	if err := h.file.Sync(); err != nil {
		h.file.Close()
		return err
	}
	return h.file.Close()
}
