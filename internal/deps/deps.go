package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"proteus/internal/config"
	"proteus/internal/fault"
)

// Requirement defines an external dependency Proteus relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements builds the binary requirements for the configured toolchain.
func Requirements(cfg *config.Config) []Requirement {
	ffmpeg := "ffmpeg"
	ffprobe := "ffprobe"
	if cfg != nil {
		ffmpeg = cfg.Tools.FFmpegBinary
		ffprobe = cfg.Tools.FFprobeBinary
	}
	return []Requirement{
		{Name: "FFmpeg", Command: ffmpeg, Description: "Performs all decoding and encoding"},
		{Name: "FFprobe", Command: ffprobe, Description: "Extracts media metadata"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Ensure verifies every required binary is available and reports the first
// missing one as a file-state error with an install hint.
func Ensure(cfg *config.Config) error {
	for _, status := range CheckBinaries(Requirements(cfg)) {
		if status.Optional || status.Available {
			continue
		}
		return fault.Wrap(fault.ErrFileState, "dependency check",
			fmt.Sprintf("%s (%s); install ffmpeg and retry", status.Detail, status.Name), nil)
	}
	return nil
}
