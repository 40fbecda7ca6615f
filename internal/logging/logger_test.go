package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jellyname/internal/config"
	"jellyname/internal/logging"
)

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "renamer").Info("renamed",
		logging.String("to", "Show S01E02.mkv"),
		logging.Int("count", 2),
	)

	line := buf.String()
	for _, want := range []string{" INFO renamer: renamed", `to="Show S01E02.mkv"`, "count=2"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as a prefix, got %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("rename failed", logging.Error(errors.New("boom")))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "warn" || payload["msg"] != "rename failed" || payload["error"] != "boom" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key in %v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesRunLog(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Level = "info"

	var console bytes.Buffer
	logger, closeLog, err := logging.NewFromConfig(&cfg, &console, "0123456789abcdef")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello", logging.String("k", "v"))
	if err := closeLog(); err != nil {
		t.Fatalf("close run log: %v", err)
	}

	if !strings.Contains(console.String(), "hello") {
		t.Fatalf("expected console output, got %q", console.String())
	}
	matches, err := filepath.Glob(filepath.Join(cfg.Paths.LogDir, "jellyname-*-01234567.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one run log, got %v (err=%v)", matches, err)
	}
	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"hello"`) {
		t.Fatalf("expected JSON record in run log, got %q", content)
	}
}

func TestNewFromConfigWithoutLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = ""

	var console bytes.Buffer
	logger, closeLog, err := logging.NewFromConfig(&cfg, &console, "run")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if closeLog == nil {
		t.Fatal("expected a close func even without a log dir")
	}
	logger.Info("console only")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !strings.Contains(console.String(), "console only") {
		t.Fatalf("expected console output, got %q", console.String())
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "jellyname-20200101T000000Z-aaaaaaaa.log")
	current := filepath.Join(dir, "jellyname-20200102T000000Z-bbbbbbbb.log")
	fresh := filepath.Join(dir, "jellyname-20990101T000000Z-cccccccc.log")
	other := filepath.Join(dir, "notes.txt")
	for _, path := range []string{old, current, fresh, other} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	past := time.Now().AddDate(0, 0, -30)
	for _, path := range []string{old, current, other} {
		if err := os.Chtimes(path, past, past); err != nil {
			t.Fatalf("chtimes %s: %v", path, err)
		}
	}

	logging.CleanupOldLogs(logging.NewNop(), dir, 7, current)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be pruned", old)
	}
	for _, path := range []string{current, fresh, other} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to remain: %v", path, err)
		}
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-42")
	logging.WithContext(ctx, logger).Info("scan")
	if !strings.Contains(buf.String(), "run_id=run-42") {
		t.Fatalf("expected run id in %q", buf.String())
	}

	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "skipping entry", "entry_metadata_unavailable",
		logging.String(logging.FieldImpact, "entry was not evaluated"),
	)
	out := buf.String()
	for _, want := range []string{"event_type=entry_metadata_unavailable", `error_hint="check logs for details"`, `impact="entry was not evaluated"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
