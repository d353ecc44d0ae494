package encoder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"proteus/internal/fault"
)

// stubBinary writes an executable shell script standing in for ffmpeg.
func stubBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg-stub")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestRunStreamsProgressAndSucceeds(t *testing.T) {
	binary := stubBinary(t, `
printf 'out_time_us=5000000\nspeed=2.0x\nprogress=continue\n'
printf 'out_time_us=10000000\nspeed=2.0x\nprogress=end\n'
exit 0
`)
	runner := NewRunner(binary, "")

	var events []ProgressEvent
	err := runner.Run(context.Background(), Job{
		Args:            []string{"-i", "in.mov", "-y", "out.mp4"},
		DurationSeconds: 10,
		OnProgress:      func(ev ProgressEvent) { events = append(events, ev) },
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Percent != 50 || !events[1].Done {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestRunClassifiesFailureWithStderrTail(t *testing.T) {
	binary := stubBinary(t, `
echo "in.mov: No such file or directory" >&2
exit 1
`)
	runner := NewRunner(binary, "")
	err := runner.Run(context.Background(), Job{Args: []string{"-i", "in.mov", "-y", "out.mp4"}})
	if !errors.Is(err, fault.ErrExternalTool) {
		t.Fatalf("expected external tool classification, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "No such file") {
		t.Fatalf("expected stderr detail in %q", got)
	}
}

func TestRunReportsInterrupt(t *testing.T) {
	binary := stubBinary(t, `sleep 30`)
	runner := NewRunner(binary, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx, Job{Args: []string{"-i", "in.mov", "-y", "out.mp4"}})
	}()
	cancel()

	err := <-done
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation to surface, got %v", err)
	}
}

func TestRunHoldsHardwareLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "hw.lock")
	binary := stubBinary(t, `
printf 'progress=end\n'
exit 0
`)
	runner := NewRunner(binary, lockPath)
	if err := runner.Run(context.Background(), Job{Hardware: true, Args: []string{"-i", "in.mov", "-y", "out.mp4"}}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(lockPath); err != nil {
		t.Fatalf("expected lock file to exist: %v", err)
	}
}
