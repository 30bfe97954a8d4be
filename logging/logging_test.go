package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mpattadkal/baxi/core"
	"github.com/mpattadkal/baxi/logger"
)

// readJSONLines parses a newline-delimited JSON log file. A missing
// file reads as empty.
func readJSONLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []map[string]interface{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if len(bytes.TrimSpace(sc.Bytes())) == 0 {
			continue
		}
		var obj map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &obj); err != nil {
			t.Fatalf("invalid JSON line in %s: %v\n%s", path, err, sc.Text())
		}
		lines = append(lines, obj)
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	return lines
}

func messages(lines []map[string]interface{}) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if m, ok := l["message"].(string); ok {
			out = append(out, m)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestInit_MissingDirectoryFails(t *testing.T) {
	_, err := Init(Config{
		AppName: "test",
		Level:   core.InfoLevel,
		Dir:     filepath.Join(t.TempDir(), "does-not-exist"),
	})
	if err == nil {
		t.Fatal("expected error for missing log directory")
	}
}

func TestInit_SeverityRouting(t *testing.T) {
	dir := t.TempDir()

	root, err := Init(Config{AppName: "test", Level: core.InfoLevel, Dir: dir})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	root.Info("an info record")
	root.Warn("a warning record")
	root.Error("an error record")
	root.Critical("a critical record")
	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	appMsgs := messages(readJSONLines(t, filepath.Join(dir, AppLogFile)))
	errMsgs := messages(readJSONLines(t, filepath.Join(dir, ErrorLogFile)))

	if !contains(appMsgs, "an info record") {
		t.Error("app.log missing INFO record")
	}
	for _, m := range []string{"a warning record", "an error record", "a critical record"} {
		if contains(appMsgs, m) {
			t.Errorf("app.log leaked %q", m)
		}
		if !contains(errMsgs, m) {
			t.Errorf("errors.log missing %q", m)
		}
	}
	if contains(errMsgs, "an info record") {
		t.Error("errors.log leaked the INFO record")
	}
}

func TestInit_DebugCapturesEverything(t *testing.T) {
	dir := t.TempDir()

	root, err := Init(Config{AppName: "test", Level: core.DebugLevel, Dir: dir})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	root.Debug("debug record")
	root.Info("info record")
	root.Warn("warn record")
	root.Error("error record")
	Shutdown()

	dbgMsgs := messages(readJSONLines(t, filepath.Join(dir, DebugLogFile)))
	for _, m := range []string{"debug record", "info record", "warn record", "error record"} {
		if !contains(dbgMsgs, m) {
			t.Errorf("debug.log missing %q", m)
		}
	}
}

func TestInit_NoDebugFileAboveDebug(t *testing.T) {
	dir := t.TempDir()

	root, err := Init(Config{AppName: "test", Level: core.InfoLevel, Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	root.Info("plain info")
	Shutdown()

	if _, err := os.Stat(filepath.Join(dir, DebugLogFile)); !os.IsNotExist(err) {
		t.Error("debug.log should not exist when level is above DEBUG")
	}
}

func TestInit_TwiceDoesNotDuplicate(t *testing.T) {
	dir := t.TempDir()

	if _, err := Init(Config{AppName: "test", Level: core.DebugLevel, Dir: dir}); err != nil {
		t.Fatal(err)
	}
	root, err := Init(Config{AppName: "test", Level: core.DebugLevel, Dir: dir, DisableExisting: true})
	if err != nil {
		t.Fatal(err)
	}

	root.Debug("logged once")
	Shutdown()

	count := 0
	for _, m := range messages(readJSONLines(t, filepath.Join(dir, DebugLogFile))) {
		if m == "logged once" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one debug.log line, got %d", count)
	}
}

func TestInit_ConsoleToggle(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		var buf bytes.Buffer
		root, err := Init(Config{
			AppName:       "test",
			Level:         core.InfoLevel,
			Dir:           t.TempDir(),
			Console:       true,
			ConsoleWriter: &buf,
		})
		if err != nil {
			t.Fatal(err)
		}
		root.Info("console record")
		Shutdown()

		if !strings.Contains(buf.String(), "console record") {
			t.Errorf("expected console output, got %q", buf.String())
		}
	})

	t.Run("disabled", func(t *testing.T) {
		var buf bytes.Buffer
		root, err := Init(Config{
			AppName:       "test",
			Level:         core.InfoLevel,
			Dir:           t.TempDir(),
			Console:       false,
			ConsoleWriter: &buf,
		})
		if err != nil {
			t.Fatal(err)
		}
		root.Info("console record")
		Shutdown()

		if buf.Len() != 0 {
			t.Errorf("expected no console output, got %q", buf.String())
		}
	})
}

func TestInit_OrderPreservedPerSink(t *testing.T) {
	dir := t.TempDir()

	root, err := Init(Config{AppName: "test", Level: core.InfoLevel, Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	root.Info("T1")
	root.Info("T2")
	root.Info("T3")
	Shutdown()

	msgs := messages(readJSONLines(t, filepath.Join(dir, AppLogFile)))
	if len(msgs) != 3 || msgs[0] != "T1" || msgs[1] != "T2" || msgs[2] != "T3" {
		t.Errorf("expected [T1 T2 T3] in order, got %v", msgs)
	}
}

// The smoke scenario: init at DEBUG, emit one debug record, verify it
// lands only in debug.log with the right shape.
func TestInit_DebugScenario(t *testing.T) {
	dir := t.TempDir()

	root, err := Init(Config{AppName: "test", Level: core.DebugLevel, Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	root.Debug("hello first error")
	Shutdown()

	dbg := readJSONLines(t, filepath.Join(dir, DebugLogFile))
	if len(dbg) != 1 {
		t.Fatalf("expected one debug.log line, got %d", len(dbg))
	}
	if dbg[0]["message"] != "hello first error" {
		t.Errorf("message = %v", dbg[0]["message"])
	}
	if dbg[0]["levelname"] != "DEBUG" {
		t.Errorf("levelname = %v", dbg[0]["levelname"])
	}
	if dbg[0]["name"] != "test" {
		t.Errorf("name = %v", dbg[0]["name"])
	}
	for _, key := range []string{"asctime", "pathname", "lineno", "funcName"} {
		if _, ok := dbg[0][key]; !ok {
			t.Errorf("debug.log line missing %q key", key)
		}
	}

	if msgs := messages(readJSONLines(t, filepath.Join(dir, AppLogFile))); len(msgs) != 0 {
		t.Errorf("app.log should be empty, got %v", msgs)
	}
	if msgs := messages(readJSONLines(t, filepath.Join(dir, ErrorLogFile))); len(msgs) != 0 {
		t.Errorf("errors.log should be empty, got %v", msgs)
	}
}

func TestInit_Propagate(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	root, err := Init(Config{
		AppName:   "test",
		Level:     core.InfoLevel,
		Dir:       t.TempDir(),
		Propagate: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	root.Info("upward bound")
	Shutdown()

	if !strings.Contains(buf.String(), "upward bound") {
		t.Errorf("expected record to propagate to slog, got %q", buf.String())
	}
}

func TestInit_SetsPackageDefault(t *testing.T) {
	dir := t.TempDir()

	prev := logger.Default()
	defer logger.SetDefault(prev)

	if _, err := Init(Config{AppName: "test", Level: core.InfoLevel, Dir: dir}); err != nil {
		t.Fatal(err)
	}
	logger.Info("through package default")
	Shutdown()

	msgs := messages(readJSONLines(t, filepath.Join(dir, AppLogFile)))
	if !contains(msgs, "through package default") {
		t.Errorf("expected record through logger package default, got %v", msgs)
	}
}
