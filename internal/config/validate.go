package config

import (
	"fmt"
)

var validSpeedPresets = map[string]struct{}{
	"ultrafast": {},
	"superfast": {},
	"veryfast":  {},
	"faster":    {},
	"fast":      {},
	"medium":    {},
	"slow":      {},
	"slower":    {},
	"veryslow":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncoding(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEncoding() error {
	if c.Encoding.Quality < 0 || c.Encoding.Quality > 51 {
		return fmt.Errorf("encoding.quality must be between 0 and 51, got %d", c.Encoding.Quality)
	}
	if _, ok := validSpeedPresets[c.Encoding.SpeedPreset]; !ok {
		return fmt.Errorf("encoding.speed_preset %q is not a valid x264 preset", c.Encoding.SpeedPreset)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	return nil
}
