package plan

import (
	"math"
	"strconv"
	"strings"

	"proteus/internal/fault"
	"proteus/internal/media/ffprobe"
)

// SpeedRequest captures the mutually exclusive ways a user can ask for a
// playback rate change.
type SpeedRequest struct {
	// Factor is the explicit rate multiplier (-x). Zero means unset.
	Factor float64
	// TargetDuration is the desired output length in seconds (-d). Zero
	// means unset.
	TargetDuration float64
}

// ResolveSpeedFactor turns a request into a concrete rate multiplier.
// Exactly one of factor and target duration must be given; a factor must be
// positive, and a target duration needs a probed source duration to divide.
func ResolveSpeedFactor(req SpeedRequest, sourceDuration float64) (float64, error) {
	hasFactor := req.Factor != 0
	hasDuration := req.TargetDuration != 0
	switch {
	case hasFactor && hasDuration:
		return 0, fault.Usagef("-x and -d are mutually exclusive; give a factor or a target duration, not both")
	case !hasFactor && !hasDuration:
		return 0, fault.Usagef("speed requires -x <factor> or -d <seconds>")
	}

	if hasFactor {
		if req.Factor <= 0 {
			return 0, fault.Usagef("speed factor must be positive, got %g", req.Factor)
		}
		return req.Factor, nil
	}

	if req.TargetDuration <= 0 {
		return 0, fault.Usagef("target duration must be positive, got %g", req.TargetDuration)
	}
	if sourceDuration <= 0 {
		return 0, fault.Wrap(fault.ErrProbe, "resolve speed factor",
			"source duration unknown; cannot derive a factor from -d", nil)
	}
	return sourceDuration / req.TargetDuration, nil
}

// BuildSpeed composes the ffmpeg argument list for a time-scale operation.
// Video timestamps are rescaled with setpts and audio with a chained atempo
// filter so both stay in sync. The source is always re-encoded; codec
// selection follows the same hardware/software split as convert.
func BuildSpeed(opts EncodeOptions, factor float64, info ffprobe.VideoInfo) ([]string, error) {
	if factor <= 0 {
		return nil, fault.Usagef("speed factor must be positive, got %g", factor)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	args := make([]string, 0, 20)
	if opts.Hardware {
		args = append(args, "-hwaccel", opts.HardwareAccel)
	}
	args = append(args, "-i", opts.InputPath)

	if opts.Hardware {
		args = append(args,
			"-c:v", opts.HardwareEncoder,
			"-q:v", strconv.Itoa(HardwareQuality(opts.Quality)),
		)
	} else {
		args = append(args,
			"-c:v", "libx264",
			"-crf", strconv.Itoa(opts.Quality),
			"-preset", opts.SpeedPreset,
		)
	}

	args = append(args, "-vf", "setpts=PTS/"+formatFactor(factor))

	switch {
	case opts.NoAudio || !info.HasAudio:
		args = append(args, "-an")
	default:
		args = append(args,
			"-af", strings.Join(atempoChain(factor), ","),
			"-c:a", "aac", "-b:a", opts.AudioBitrate,
		)
	}

	args = append(args, "-y", opts.OutputPath)
	return args, nil
}

// atempoChain decomposes a rate factor into atempo steps. The filter only
// accepts tempo values in [0.5, 2.0], so larger changes are chained.
func atempoChain(factor float64) []string {
	steps := make([]string, 0, 4)
	for factor > 2.0 {
		steps = append(steps, "atempo=2.0")
		factor /= 2.0
	}
	for factor < 0.5 {
		steps = append(steps, "atempo=0.5")
		factor /= 0.5
	}
	return append(steps, "atempo="+formatFactor(factor))
}

func formatFactor(factor float64) string {
	rounded := math.Round(factor*10000) / 10000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
