package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeTools()
	if err := c.normalizeEncoding(); err != nil {
		return err
	}
	c.normalizeEstimate()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTools() {
	c.Tools.FFmpegBinary = strings.TrimSpace(c.Tools.FFmpegBinary)
	if c.Tools.FFmpegBinary == "" {
		c.Tools.FFmpegBinary = defaultFFmpegBinary
	}
	c.Tools.FFprobeBinary = strings.TrimSpace(c.Tools.FFprobeBinary)
	if c.Tools.FFprobeBinary == "" {
		c.Tools.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeEncoding() error {
	c.Encoding.SpeedPreset = strings.ToLower(strings.TrimSpace(c.Encoding.SpeedPreset))
	if c.Encoding.SpeedPreset == "" {
		c.Encoding.SpeedPreset = defaultSpeedPreset
	}
	c.Encoding.AudioBitrate = strings.ToLower(strings.TrimSpace(c.Encoding.AudioBitrate))
	if c.Encoding.AudioBitrate == "" {
		c.Encoding.AudioBitrate = defaultAudioBitrate
	}
	c.Encoding.HardwareEncoder = strings.TrimSpace(c.Encoding.HardwareEncoder)
	if c.Encoding.HardwareEncoder == "" {
		c.Encoding.HardwareEncoder = defaultHardwareEncoder
	}
	c.Encoding.HardwareAccel = strings.TrimSpace(c.Encoding.HardwareAccel)
	if c.Encoding.HardwareAccel == "" {
		c.Encoding.HardwareAccel = defaultHardwareAccel
	}
	if strings.TrimSpace(c.Encoding.HardwareLockPath) == "" {
		c.Encoding.HardwareLockPath = defaultHardwareLockPath()
	}
	var err error
	if c.Encoding.HardwareLockPath, err = expandPath(c.Encoding.HardwareLockPath); err != nil {
		return fmt.Errorf("encoding.hardware_lock_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeEstimate() {
	if c.Estimate.SampleSeconds <= 0 {
		c.Estimate.SampleSeconds = defaultSampleSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
