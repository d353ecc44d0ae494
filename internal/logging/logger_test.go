package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("encode started", "input", "clip.mov", "crf", 23)

	line := buf.String()
	if !strings.Contains(line, "INF") {
		t.Fatalf("expected level label in output, got %q", line)
	}
	if !strings.Contains(line, "encode started") {
		t.Fatalf("expected message in output, got %q", line)
	}
	if !strings.Contains(line, "input=clip.mov") || !strings.Contains(line, "crf=23") {
		t.Fatalf("expected attrs in output, got %q", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigVerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("details")
	if !strings.Contains(buf.String(), "DBG") {
		t.Fatalf("expected debug label, got %q", buf.String())
	}
}
