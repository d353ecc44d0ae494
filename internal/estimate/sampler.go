package estimate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"proteus/internal/fault"
	"proteus/internal/media/ffprobe"
	"proteus/internal/plan"
	"proteus/internal/preset"
)

// Sampler produces measured estimates by encoding a short sample of the
// source at each level and extrapolating linearly by duration. Strictly more
// expensive than the heuristic path; the CLI only uses it when the user asks
// for a thorough preview.
type Sampler struct {
	Binary        string
	SampleSeconds int

	// run executes the sample encode; tests replace it.
	run func(ctx context.Context, binary string, args []string) error
}

// NewSampler builds a sampler for the given ffmpeg binary.
func NewSampler(binary string, sampleSeconds int) *Sampler {
	if sampleSeconds <= 0 {
		sampleSeconds = 10
	}
	return &Sampler{
		Binary:        binary,
		SampleSeconds: sampleSeconds,
		run:           runQuiet,
	}
}

// SampleLevel encodes the first few seconds of the source at one level and
// extrapolates the full output size. The temp output is removed afterwards.
func (s *Sampler) SampleLevel(ctx context.Context, info ffprobe.VideoInfo, opts plan.EncodeOptions, level preset.Level) (Estimate, error) {
	settings, err := preset.Resolve(level)
	if err != nil {
		return Estimate{}, err
	}

	sampleSeconds := float64(s.SampleSeconds)
	if info.Duration > 0 && info.Duration < sampleSeconds {
		sampleSeconds = info.Duration
	}
	if sampleSeconds <= 0 {
		return Estimate{}, fault.Wrap(fault.ErrProbe, "sample encode",
			"source duration unknown; cannot extrapolate a sample", nil)
	}

	sampleOpts := opts
	sampleOpts.Quality = settings.CRF
	sampleOpts.AudioBitrate = settings.AudioBitrate
	sampleOpts.SpeedPreset = settings.SpeedPreset
	sampleOpts.OutputPath = filepath.Join(os.TempDir(), "proteus-sample-"+uuid.NewString()+".mp4")

	args, err := plan.BuildConvert(sampleOpts, info)
	if err != nil {
		return Estimate{}, err
	}
	args = limitDuration(args, sampleSeconds)

	defer os.Remove(sampleOpts.OutputPath)
	if err := s.run(ctx, s.Binary, args); err != nil {
		return Estimate{}, fault.Wrap(fault.ErrExternalTool, "sample encode",
			fmt.Sprintf("level %s", level), err)
	}

	stat, err := os.Stat(sampleOpts.OutputPath)
	if err != nil {
		return Estimate{}, fault.Wrap(fault.ErrExternalTool, "sample encode",
			"sample output missing", err)
	}

	bytes := stat.Size()
	if info.Duration > sampleSeconds {
		bytes = int64(float64(bytes) * info.Duration / sampleSeconds)
	}
	return Estimate{
		Level:  level,
		CRF:    settings.CRF,
		Bytes:  bytes,
		Method: MethodSampled,
	}, nil
}

// SampleLevels runs a sample encode per level, sequentially: the hardware
// encode unit is a shared resource and parallel samples would contend for it.
func (s *Sampler) SampleLevels(ctx context.Context, info ffprobe.VideoInfo, opts plan.EncodeOptions) ([]Estimate, error) {
	levels := preset.Levels()
	estimates := make([]Estimate, 0, len(levels))
	for _, level := range levels {
		est, err := s.SampleLevel(ctx, info, opts, level)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, est)
	}
	return estimates, nil
}

// limitDuration injects -t before the trailing "-y <output>" pair so only
// the sample window is encoded.
func limitDuration(args []string, seconds float64) []string {
	if len(args) < 2 {
		return args
	}
	head := append([]string(nil), args[:len(args)-2]...)
	head = append(head, "-t", strconv.FormatFloat(seconds, 'f', -1, 64))
	return append(head, args[len(args)-2:]...)
}

func runQuiet(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, append([]string{"-hide_banner", "-loglevel", "error", "-nostdin"}, args...)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
