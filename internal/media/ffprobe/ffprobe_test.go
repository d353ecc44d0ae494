package ffprobe

import (
	"errors"
	"testing"

	"proteus/internal/fault"
)

const sampleJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30000/1001",
      "avg_frame_rate": "30000/1001"
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "sample_rate": "48000",
      "channels": 2
    }
  ],
  "format": {
    "filename": "clip.mov",
    "nb_streams": 2,
    "duration": "60.000000",
    "size": "375000000",
    "bit_rate": "50000000",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "format_long_name": "QuickTime / MOV"
  }
}`

func TestParseAndInfo(t *testing.T) {
	result, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	info, err := result.Info()
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Fatalf("unexpected dimensions %dx%d", info.Width, info.Height)
	}
	if info.Duration != 60 {
		t.Fatalf("unexpected duration %v", info.Duration)
	}
	if info.SizeBytes != 375000000 {
		t.Fatalf("unexpected size %d", info.SizeBytes)
	}
	if info.SourceKbps != 50000 {
		t.Fatalf("unexpected bitrate %d kbps", info.SourceKbps)
	}
	if info.VideoCodec != "h264" {
		t.Fatalf("unexpected video codec %q", info.VideoCodec)
	}
	if !info.HasAudio || info.AudioCodec != "aac" || info.Channels != 2 {
		t.Fatalf("unexpected audio info %+v", info)
	}
	if info.Container != "QuickTime / MOV" {
		t.Fatalf("unexpected container %q", info.Container)
	}
	if info.FrameRate < 29.9 || info.FrameRate > 30.0 {
		t.Fatalf("unexpected frame rate %v", info.FrameRate)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not json"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, fault.ErrProbe) {
		t.Fatalf("expected probe classification, got %v", err)
	}
}

func TestInfoRequiresVideoStream(t *testing.T) {
	result := Result{
		Streams: []Stream{{CodecType: "audio", CodecName: "aac"}},
		Format:  Format{Duration: "10"},
	}
	if _, err := result.Info(); !errors.Is(err, fault.ErrProbe) {
		t.Fatalf("expected probe error without video stream, got %v", err)
	}

	result = Result{
		Streams: []Stream{{CodecType: "video", Width: 0, Height: 1080}},
	}
	if _, err := result.Info(); !errors.Is(err, fault.ErrProbe) {
		t.Fatalf("expected probe error for zero width, got %v", err)
	}
}

func TestFrameRateParsing(t *testing.T) {
	cases := []struct {
		stream Stream
		want   float64
	}{
		{Stream{AvgFrameRate: "30/1"}, 30},
		{Stream{RFrameRate: "25/1"}, 25},
		{Stream{AvgFrameRate: "0/0", RFrameRate: "24000/1001"}, 23.976},
		{Stream{}, 0},
	}
	for _, tc := range cases {
		got := tc.stream.FrameRate()
		if diff := got - tc.want; diff > 0.001 || diff < -0.001 {
			t.Fatalf("frame rate for %+v: expected %v, got %v", tc.stream, tc.want, got)
		}
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Format: Format{Duration: "bad", Size: "-1", BitRate: "nope"},
	}
	if result.DurationSeconds() != 0 {
		t.Fatalf("expected duration 0, got %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 0 {
		t.Fatalf("expected size 0, got %d", result.SizeBytes())
	}
	if result.BitRate() != 0 {
		t.Fatalf("expected bitrate 0, got %d", result.BitRate())
	}
}
