package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "run.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	LogEvent("benchmark started with %d models", 3)
	LogRequest("send", "gemini-2.5-flash", "2 messages")

	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "benchmark started with 3 models") {
		t.Fatalf("event missing from log: %s", out)
	}
	if !strings.Contains(out, "[SEND] model=gemini-2.5-flash payload=2 messages") {
		t.Fatalf("request line missing from log: %s", out)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("init without file: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	if err := Close(); err != nil {
		t.Fatalf("close without file: %v", err)
	}
}

func TestFormatPayload(t *testing.T) {
	if got := formatPayload(nil); got != "null" {
		t.Fatalf("nil payload: %s", got)
	}
	if got := formatPayload("  "); got != `""` {
		t.Fatalf("blank payload: %s", got)
	}
	if got := formatPayload(map[string]int{"turns": 2}); got != `{"turns":2}` {
		t.Fatalf("map payload: %s", got)
	}
}
