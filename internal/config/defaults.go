package config

import (
	"os"
	"path/filepath"
)

const (
	defaultFFmpegBinary    = "ffmpeg"
	defaultFFprobeBinary   = "ffprobe"
	defaultQuality         = 23
	defaultSpeedPreset     = "medium"
	defaultAudioBitrate    = "192k"
	defaultHardware        = true
	defaultHardwareEncoder = "h264_videotoolbox"
	defaultHardwareAccel   = "videotoolbox"
	defaultSampleSeconds   = 10
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Encoding: Encoding{
			Quality:          defaultQuality,
			SpeedPreset:      defaultSpeedPreset,
			AudioBitrate:     defaultAudioBitrate,
			Hardware:         defaultHardware,
			HardwareEncoder:  defaultHardwareEncoder,
			HardwareAccel:    defaultHardwareAccel,
			HardwareLockPath: defaultHardwareLockPath(),
		},
		Estimate: Estimate{
			SampleSeconds: defaultSampleSeconds,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

func defaultHardwareLockPath() string {
	return filepath.Join(os.TempDir(), "proteus-hwencode.lock")
}
