package plan

import (
	"proteus/internal/config"
	"proteus/internal/fault"
)

// EncodeOptions carries everything the command builder needs for one
// invocation. It is assembled once from flags plus config defaults and not
// mutated afterwards.
type EncodeOptions struct {
	InputPath  string
	OutputPath string

	// Quality is the CRF on the software path; the hardware path maps it
	// onto the encoder's 0-100 quality scale.
	Quality      int
	SpeedPreset  string
	AudioBitrate string
	Resolution   *ResolutionSpec
	NoAudio      bool
	ExtraFilters []string

	// Hardware selects the hardware encode unit; --slow turns it off.
	Hardware        bool
	HardwareEncoder string
	HardwareAccel   string

	Force bool
}

// NewEncodeOptions seeds options from configuration defaults.
func NewEncodeOptions(cfg *config.Config) EncodeOptions {
	opts := EncodeOptions{
		Quality:      23,
		SpeedPreset:  "medium",
		AudioBitrate: "192k",
		Hardware:     true,
	}
	if cfg != nil {
		opts.Quality = cfg.Encoding.Quality
		opts.SpeedPreset = cfg.Encoding.SpeedPreset
		opts.AudioBitrate = cfg.Encoding.AudioBitrate
		opts.Hardware = cfg.Encoding.Hardware
		opts.HardwareEncoder = cfg.Encoding.HardwareEncoder
		opts.HardwareAccel = cfg.Encoding.HardwareAccel
	}
	return opts
}

// Validate checks the option values that do not need probe data.
func (o EncodeOptions) Validate() error {
	if o.Quality < 0 || o.Quality > 51 {
		return fault.Usagef("quality %d out of range; CRF must be between 0 and 51", o.Quality)
	}
	return nil
}
