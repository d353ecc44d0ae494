package plan

import (
	"fmt"
	"strconv"
	"strings"

	"proteus/internal/media/ffprobe"
)

// HardwareQuality maps a CRF onto the hardware encoder's 0-100 quality
// scale, where lower is better.
func HardwareQuality(crf int) int {
	q := int(20 + float64(crf-18)*3.5)
	if q < 0 {
		q = 0
	}
	if q > 100 {
		q = 100
	}
	return q
}

// BuildConvert composes the full ffmpeg argument list (binary name
// excluded) for a convert or compress encode: H.264 video, AAC audio, with
// optional downscaling and audio stripping. The builder is pure; nothing
// runs until the arguments are handed to the encoder runner.
func BuildConvert(opts EncodeOptions, info ffprobe.VideoInfo) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	targetWidth, targetHeight, err := ResolveResolution(opts.Resolution, info.Width, info.Height)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, 24)
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

	if opts.NoAudio {
		args = append(args, "-an")
	} else {
		args = append(args, "-c:a", "aac", "-b:a", opts.AudioBitrate)
	}

	filters := make([]string, 0, 1+len(opts.ExtraFilters))
	if opts.Resolution != nil {
		filters = append(filters, fmt.Sprintf("scale=%d:%d", targetWidth, targetHeight))
	}
	filters = append(filters, opts.ExtraFilters...)
	if len(filters) > 0 {
		args = append(args, "-vf", strings.Join(filters, ","))
	}

	args = append(args, "-y", opts.OutputPath)
	return args, nil
}
