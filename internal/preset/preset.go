package preset

import (
	"fmt"
	"strings"

	"proteus/internal/fault"
)

// Level names a compression preset.
type Level string

// The four supported compression levels, ordered lightest to heaviest.
const (
	LevelLight   Level = "light"
	LevelMedium  Level = "medium"
	LevelHeavy   Level = "heavy"
	LevelExtreme Level = "extreme"
)

// Settings bundles the encoding parameters a level resolves to.
type Settings struct {
	CRF          int
	AudioBitrate string
	SpeedPreset  string
	ExtraFilters []string
}

// The table is fixed at build time. Heavier levels trade encode speed for
// size, so they also step down the x264 speed preset.
var table = map[Level]Settings{
	LevelLight:   {CRF: 20, AudioBitrate: "192k", SpeedPreset: "fast"},
	LevelMedium:  {CRF: 26, AudioBitrate: "192k", SpeedPreset: "medium"},
	LevelHeavy:   {CRF: 30, AudioBitrate: "128k", SpeedPreset: "slow"},
	LevelExtreme: {CRF: 35, AudioBitrate: "128k", SpeedPreset: "slower"},
}

// Levels returns the supported levels in display order.
func Levels() []Level {
	return []Level{LevelLight, LevelMedium, LevelHeavy, LevelExtreme}
}

// Parse normalizes a user-supplied level name.
func Parse(raw string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := table[level]; !ok {
		return "", fault.Usagef("unknown level %q; use %s", raw, levelList())
	}
	return level, nil
}

// Resolve looks up the settings for a level. The mapping is total over the
// four defined levels and fails for anything else.
func Resolve(level Level) (Settings, error) {
	settings, ok := table[level]
	if !ok {
		return Settings{}, fault.Usagef("unknown level %q; use %s", string(level), levelList())
	}
	settings.ExtraFilters = append([]string(nil), settings.ExtraFilters...)
	return settings, nil
}

// Next returns the next heavier level, or false when already at extreme.
func Next(level Level) (Level, bool) {
	order := Levels()
	for i, l := range order {
		if l == level && i < len(order)-1 {
			return order[i+1], true
		}
	}
	return "", false
}

func levelList() string {
	order := Levels()
	names := make([]string, 0, len(order))
	for _, l := range order {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}

// FromCRF maps a CRF back to the level that produces it, when one exists.
func FromCRF(crf int) (Level, bool) {
	for _, level := range Levels() {
		if table[level].CRF == crf {
			return level, true
		}
	}
	return "", false
}

// Describe renders a short human label such as "heavy (CRF 30)".
func Describe(level Level) string {
	settings := table[level]
	return fmt.Sprintf("%s (CRF %d)", level, settings.CRF)
}
