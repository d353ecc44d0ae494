package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"proteus/internal/fault"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index        int    `json:"index"`
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"`
	Duration     string `json:"duration"`
	BitRate      string `json:"bit_rate"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
	SampleRate   string `json:"sample_rate"`
	Channels     int    `json:"channels"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename       string `json:"filename"`
	NBStreams      int    `json:"nb_streams"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response. A non-zero exit or unparsable payload is a probe failure.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, fault.Wrap(fault.ErrProbe, "ffprobe inspect", "empty path", nil)
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderrOf(err))
		return Result{}, fault.Wrap(fault.ErrProbe, "ffprobe inspect", detail, err)
	}
	return Parse(output)
}

// Parse decodes an ffprobe JSON payload.
func Parse(data []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, fault.Wrap(fault.ErrProbe, "ffprobe parse", "", err)
	}
	return result, nil
}

func stderrOf(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(exitErr.Stderr)
	}
	return err.Error()
}

// DurationSeconds returns the container duration in seconds, or 0 when
// unavailable.
func (r Result) DurationSeconds() float64 {
	duration := parseFloat(r.Format.Duration)
	if math.IsNaN(duration) || duration < 0 {
		return 0
	}
	return duration
}

// SizeBytes returns the reported container size in bytes, or 0 when
// unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return int64(size)
}

// BitRate returns the container bitrate in bits per second, or 0 when
// unavailable.
func (r Result) BitRate() int64 {
	rate := parseFloat(r.Format.BitRate)
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return int64(rate)
}

// PrimaryVideo returns the first video stream, or nil when there is none.
func (r Result) PrimaryVideo() *Stream {
	for i := range r.Streams {
		if strings.EqualFold(r.Streams[i].CodecType, "video") {
			return &r.Streams[i]
		}
	}
	return nil
}

// PrimaryAudio returns the first audio stream, or nil when there is none.
func (r Result) PrimaryAudio() *Stream {
	for i := range r.Streams {
		if strings.EqualFold(r.Streams[i].CodecType, "audio") {
			return &r.Streams[i]
		}
	}
	return nil
}

// FrameRate returns the stream frame rate in frames per second, preferring
// the average rate over the raw rate.
func (s Stream) FrameRate() float64 {
	if fps := parseRational(s.AvgFrameRate); fps > 0 {
		return fps
	}
	return parseRational(s.RFrameRate)
}

func parseRational(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	num, den, found := strings.Cut(value, "/")
	if !found {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			return parsed
		}
		return 0
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	fps := n / d
	if fps <= 0 {
		return 0
	}
	return fps
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}

// VideoInfo is the flattened record the rest of the tool consumes: display,
// estimation, and command planning all read from it.
type VideoInfo struct {
	Path       string
	SizeBytes  int64
	Duration   float64
	Container  string
	VideoCodec string
	Width      int
	Height     int
	FrameRate  float64
	HasAudio   bool
	AudioCodec string
	SampleRate string
	Channels   int
	SourceKbps int64
}

// Info validates the probe result and flattens it into a VideoInfo. A result
// without a video stream or usable dimensions is a probe failure.
func (r Result) Info() (VideoInfo, error) {
	video := r.PrimaryVideo()
	if video == nil {
		return VideoInfo{}, fault.Wrap(fault.ErrProbe, "ffprobe parse", "no video stream found", nil)
	}
	if video.Width <= 0 || video.Height <= 0 {
		return VideoInfo{}, fault.Wrap(fault.ErrProbe, "ffprobe parse",
			fmt.Sprintf("invalid video dimensions %dx%d", video.Width, video.Height), nil)
	}

	info := VideoInfo{
		Path:       r.Format.Filename,
		SizeBytes:  r.SizeBytes(),
		Duration:   r.DurationSeconds(),
		Container:  containerName(r.Format),
		VideoCodec: video.CodecName,
		Width:      video.Width,
		Height:     video.Height,
		FrameRate:  video.FrameRate(),
		SourceKbps: (r.BitRate() + 500) / 1000,
	}
	if audio := r.PrimaryAudio(); audio != nil {
		info.HasAudio = true
		info.AudioCodec = audio.CodecName
		info.SampleRate = audio.SampleRate
		info.Channels = audio.Channels
	}
	return info, nil
}

func containerName(format Format) string {
	if long := strings.TrimSpace(format.FormatLongName); long != "" {
		return long
	}
	return strings.TrimSpace(format.FormatName)
}
