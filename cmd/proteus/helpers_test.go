package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59.4, "0:59"},
		{61, "1:01"},
		{300, "5:00"},
		{3725, "1:02:05"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.seconds); got != tc.want {
			t.Fatalf("formatDuration(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestCompressionSummaryShowsFactor(t *testing.T) {
	line := compressionSummary(100_000_000, 25_000_000)
	if !strings.Contains(line, "4.0x smaller") {
		t.Fatalf("expected compression factor in %q", line)
	}
	if !strings.Contains(line, "saved 75 MB") {
		t.Fatalf("expected saved size in %q", line)
	}
}

func TestCompressionSummaryGrowth(t *testing.T) {
	line := compressionSummary(1_000_000, 2_000_000)
	if strings.Contains(line, "smaller") {
		t.Fatalf("growth should not claim a reduction: %q", line)
	}
	if !strings.Contains(line, "✓ Done") {
		t.Fatalf("expected done marker in %q", line)
	}
}

func TestSuggestCommandQuotesPaths(t *testing.T) {
	got := suggestCommand("convert", "my movie.mov", "-r", "720")
	if got != "proteus convert 'my movie.mov' -r 720" {
		t.Fatalf("unexpected suggestion %q", got)
	}
	plain := suggestCommand("compress", "video.mp4")
	if plain != "proteus compress video.mp4" {
		t.Fatalf("unexpected suggestion %q", plain)
	}
}
