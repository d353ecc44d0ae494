package preset

import (
	"errors"
	"testing"

	"proteus/internal/fault"
)

func TestResolveIsTotalOverDefinedLevels(t *testing.T) {
	for _, level := range Levels() {
		first, err := Resolve(level)
		if err != nil {
			t.Fatalf("resolve %s: %v", level, err)
		}
		second, err := Resolve(level)
		if err != nil {
			t.Fatalf("resolve %s again: %v", level, err)
		}
		if first.CRF != second.CRF || first.AudioBitrate != second.AudioBitrate || first.SpeedPreset != second.SpeedPreset {
			t.Fatalf("resolve %s not deterministic: %+v vs %+v", level, first, second)
		}
		if first.CRF < 0 || first.CRF > 51 {
			t.Fatalf("resolve %s: CRF %d out of range", level, first.CRF)
		}
	}
}

func TestResolveTableValues(t *testing.T) {
	cases := []struct {
		level   Level
		crf     int
		bitrate string
	}{
		{LevelLight, 20, "192k"},
		{LevelMedium, 26, "192k"},
		{LevelHeavy, 30, "128k"},
		{LevelExtreme, 35, "128k"},
	}
	for _, tc := range cases {
		settings, err := Resolve(tc.level)
		if err != nil {
			t.Fatalf("resolve %s: %v", tc.level, err)
		}
		if settings.CRF != tc.crf {
			t.Fatalf("%s: expected CRF %d, got %d", tc.level, tc.crf, settings.CRF)
		}
		if settings.AudioBitrate != tc.bitrate {
			t.Fatalf("%s: expected audio bitrate %s, got %s", tc.level, tc.bitrate, settings.AudioBitrate)
		}
	}
}

func TestResolveRejectsUnknownLevels(t *testing.T) {
	for _, raw := range []string{"", "maximum", "LIGHTER", "heavy ", "ultra"} {
		if _, err := Resolve(Level(raw)); err == nil {
			t.Fatalf("expected error for level %q", raw)
		} else if !errors.Is(err, fault.ErrUsage) {
			t.Fatalf("expected usage error for level %q, got %v", raw, err)
		}
	}
}

func TestParseNormalizes(t *testing.T) {
	level, err := Parse("  HEAVY ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if level != LevelHeavy {
		t.Fatalf("expected heavy, got %s", level)
	}
	if _, err := Parse("bogus"); err == nil {
		t.Fatal("expected error for bogus level")
	}
}

func TestNextStepsTowardExtreme(t *testing.T) {
	next, ok := Next(LevelHeavy)
	if !ok || next != LevelExtreme {
		t.Fatalf("expected extreme after heavy, got %s (%v)", next, ok)
	}
	if _, ok := Next(LevelExtreme); ok {
		t.Fatal("expected no level after extreme")
	}
}

func TestFromCRF(t *testing.T) {
	level, ok := FromCRF(30)
	if !ok || level != LevelHeavy {
		t.Fatalf("expected heavy for CRF 30, got %s (%v)", level, ok)
	}
	if _, ok := FromCRF(23); ok {
		t.Fatal("CRF 23 should not map to a level")
	}
}
