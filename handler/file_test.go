package handler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mpattadkal/baxi/core"
	"github.com/mpattadkal/baxi/formatter"
)

func TestFileHandler_AppendMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	// First handler writes one record
	h1, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	emit(h1, core.InfoLevel, "first run")
	h1.Close()

	// Second handler on the same path must append, not truncate
	h2, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	emit(h2, core.InfoLevel, "second run")
	h2.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "first run") || !strings.Contains(out, "second run") {
		t.Errorf("expected both runs in file, got %q", out)
	}
}

func TestFileHandler_MissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "app.log")

	_, err := NewFileHandler(FileConfig{Filename: path})
	if err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestFileHandler_ThresholdAndFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	h, err := NewFileHandler(FileConfig{
		Filename: path,
		Level:    core.InfoLevel,
		Filter:   LevelExact(core.InfoLevel),
	})
	if err != nil {
		t.Fatal(err)
	}
	emit(h, core.DebugLevel, "below threshold")
	emit(h, core.InfoLevel, "exactly info")
	emit(h, core.ErrorLevel, "above but filtered")
	h.Close()

	data, _ := os.ReadFile(path)
	out := string(data)
	if !strings.Contains(out, "exactly info") {
		t.Errorf("expected INFO record in file, got %q", out)
	}
	if strings.Contains(out, "below threshold") || strings.Contains(out, "above but filtered") {
		t.Errorf("filter leaked records: %q", out)
	}
}

func TestFileHandler_SizeRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	h, err := NewFileHandler(FileConfig{
		Filename:  path,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
		MaxSize:   256,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		emit(h, core.InfoLevel, "rotation filler record with some padding")
	}
	h.Close()

	matches, err := filepath.Glob(path + ".*")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Error("expected at least one rotated backup file")
	}
}

func TestFileHandler_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
