package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"proteus/internal/config"
	"proteus/internal/fault"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
}

func TestRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.FFmpegBinary = "/opt/ffmpeg/bin/ffmpeg"
	reqs := Requirements(&cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("expected configured ffmpeg path, got %s", reqs[0].Command)
	}
}

func TestEnsureReportsMissingBinary(t *testing.T) {
	t.Setenv("PATH", "")
	cfg := config.Default()
	cfg.Tools.FFmpegBinary = "definitely-not-ffmpeg"
	cfg.Tools.FFprobeBinary = "definitely-not-ffprobe"

	err := Ensure(&cfg)
	if err == nil {
		t.Fatal("expected error when binaries are missing")
	}
	if !errors.Is(err, fault.ErrFileState) {
		t.Fatalf("expected file state classification, got %v", err)
	}
}
