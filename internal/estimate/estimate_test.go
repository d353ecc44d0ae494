package estimate

import (
	"testing"

	"proteus/internal/media/ffprobe"
	"proteus/internal/preset"
)

func hdSource() ffprobe.VideoInfo {
	return ffprobe.VideoInfo{
		Width:      1920,
		Height:     1080,
		Duration:   60,
		SizeBytes:  375_000_000,
		SourceKbps: 50_000,
		HasAudio:   true,
	}
}

func TestHeuristicHeavyLevelShrinksSource(t *testing.T) {
	est, err := HeuristicLevel(hdSource(), preset.LevelHeavy, 0)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.Method != MethodHeuristic {
		t.Fatalf("expected heuristic tag, got %s", est.Method)
	}
	if est.CRF != 30 {
		t.Fatalf("expected CRF 30 for heavy, got %d", est.CRF)
	}
	if est.Bytes <= 0 || est.Bytes >= hdSource().SizeBytes {
		t.Fatalf("expected estimate below source size, got %d", est.Bytes)
	}
}

func TestHeuristicMonotoneInCRF(t *testing.T) {
	info := hdSource()
	previous := info.SizeBytes
	for crf := 18; crf <= 35; crf++ {
		est := Heuristic(info, crf, 0)
		if est.Bytes > previous {
			t.Fatalf("CRF %d estimate %d larger than CRF %d estimate %d", crf, est.Bytes, crf-1, previous)
		}
		previous = est.Bytes
	}
}

func TestHeuristicClampsCRF(t *testing.T) {
	info := hdSource()
	if Heuristic(info, 10, 0).Bytes != Heuristic(info, 18, 0).Bytes {
		t.Fatal("CRF below 18 should clamp to the CRF 18 ratio")
	}
	if Heuristic(info, 45, 0).Bytes != Heuristic(info, 35, 0).Bytes {
		t.Fatal("CRF above 35 should clamp to the CRF 35 ratio")
	}
}

func TestHeuristicScalesQuadraticallyWithResolution(t *testing.T) {
	info := hdSource()
	full := Heuristic(info, 23, 0)
	half := Heuristic(info, 23, 540)
	ratio := float64(half.Bytes) / float64(full.Bytes)
	if ratio < 0.24 || ratio > 0.26 {
		t.Fatalf("expected roughly quarter size at half height, got ratio %v", ratio)
	}

	same := Heuristic(info, 23, 1080)
	if same.Bytes != full.Bytes {
		t.Fatal("matching target height should not scale the estimate")
	}
}
