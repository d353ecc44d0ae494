package main

import (
	"github.com/spf13/cobra"

	"proteus/internal/preset"
)

func newCompressCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags
	var level string

	cmd := &cobra.Command{
		Use:   "compress <input>",
		Short: "Smart compression with presets",
		Long: `Compress video using a named level instead of raw encoder knobs.

Levels: light, medium, heavy, extreme.

Examples:
  proteus compress video.mp4            # fast compression (hardware)
  proteus compress video.mp4 -r 1080    # scale 4K down to 1080p
  proteus compress video.mp4 -l heavy   # heavy compression for sharing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := preset.Parse(level)
			if err != nil {
				return err
			}
			return runConvertFlow(cmd, ctx, args[0], flags, parsed)
		},
	}

	flags.bindCommon(cmd)
	flags.bindResolution(cmd)
	cmd.Flags().StringVarP(&level, "level", "l", "medium", "Compression level: light, medium, heavy, extreme")
	cmd.Flags().IntVarP(&flags.quality, "quality", "q", 0, "Override the level's CRF")
	cmd.Flags().StringVarP(&flags.speed, "preset", "p", "", "Override the level's encoding speed preset")
	cmd.Flags().StringVarP(&flags.audio, "audio", "a", "", "Override the level's audio bitrate")

	return cmd
}
