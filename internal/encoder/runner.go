package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"proteus/internal/fault"
)

// Runner executes planned ffmpeg invocations and streams progress back to
// the caller.
type Runner struct {
	Binary   string
	LockPath string
}

// Job describes one encode execution.
type Job struct {
	// Args is the full argument list produced by the plan package.
	Args []string
	// DurationSeconds is the expected output duration, used to compute
	// percentages. Zero means unknown and events carry Percent -1.
	DurationSeconds float64
	// Hardware encodes serialize on the encode-unit lock.
	Hardware bool
	// Verbose passes ffmpeg's own stderr through instead of capturing it.
	Verbose bool
	// OnProgress receives one event per progress batch. May be nil.
	OnProgress func(ProgressEvent)
}

// NewRunner builds a runner for the given ffmpeg binary. lockPath may be
// empty to disable hardware serialization.
func NewRunner(binary, lockPath string) *Runner {
	return &Runner{Binary: binary, LockPath: lockPath}
}

// Run executes the job and blocks until ffmpeg exits. Cancelling the context
// kills ffmpeg; the partial output file is left in place for the caller to
// report. A hardware job holds an exclusive file lock for its whole runtime
// so concurrent proteus processes do not contend for the encode unit.
func (r *Runner) Run(ctx context.Context, job Job) error {
	if job.Hardware && r.LockPath != "" {
		unlock, err := r.acquireHardwareLock(ctx)
		if err != nil {
			return err
		}
		defer unlock()
	}

	args := append([]string{"-hide_banner", "-nostdin", "-nostats", "-progress", "pipe:1"}, job.Args...)
	cmd := exec.CommandContext(ctx, r.Binary, args...)

	var stderr bytes.Buffer
	if job.Verbose {
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fault.Wrap(fault.ErrExternalTool, "encode", "open progress pipe", err)
	}
	if err := cmd.Start(); err != nil {
		return fault.Wrap(fault.ErrExternalTool, "encode",
			fmt.Sprintf("start %s", r.Binary), err)
	}

	progressErr := consumeProgress(stdout, job.DurationSeconds, job.OnProgress)
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return fmt.Errorf("encode interrupted: %w", ctx.Err())
	}
	if waitErr != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = waitErr.Error()
		}
		return fault.Wrap(fault.ErrExternalTool, "encode", tailLines(detail, 6), waitErr)
	}
	if progressErr != nil && !errors.Is(progressErr, io.ErrClosedPipe) {
		return fault.Wrap(fault.ErrExternalTool, "encode", "read progress stream", progressErr)
	}
	return nil
}

func (r *Runner) acquireHardwareLock(ctx context.Context) (func(), error) {
	lock := flock.New(r.LockPath)
	locked, err := lock.TryLockContext(ctx, 250*time.Millisecond)
	if err != nil {
		return nil, fault.Wrap(fault.ErrExternalTool, "encode",
			fmt.Sprintf("acquire hardware encode lock %s", r.LockPath), err)
	}
	if !locked {
		return nil, fault.Wrap(fault.ErrExternalTool, "encode",
			fmt.Sprintf("hardware encode lock %s is held by another process", r.LockPath), nil)
	}
	return func() { _ = lock.Unlock() }, nil
}

// tailLines keeps the last n lines of ffmpeg stderr; the useful diagnostic
// is almost always at the end.
func tailLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
