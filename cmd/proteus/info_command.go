package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"proteus/internal/deps"
	"proteus/internal/media/ffprobe"
	"proteus/internal/plan"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Show video file information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input := args[0]
			if err := plan.EnsureInput(input); err != nil {
				return err
			}
			if err := deps.Ensure(cfg); err != nil {
				return err
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.Tools.FFprobeBinary, input)
			if err != nil {
				return err
			}
			info, err := result.Info()
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Size", formatSize(info.SizeBytes)},
				{"Duration", formatDuration(info.Duration)},
				{"Format", info.Container},
				{"Video Codec", info.VideoCodec},
				{"Resolution", fmt.Sprintf("%dx%d", info.Width, info.Height)},
				{"Frame Rate", fmt.Sprintf("%.2f fps", info.FrameRate)},
			}
			if info.SourceKbps > 0 {
				rows = append(rows, []string{"Bitrate", fmt.Sprintf("%d kb/s", info.SourceKbps)})
			}
			if info.HasAudio {
				rows = append(rows,
					[]string{"Audio Codec", info.AudioCodec},
					[]string{"Sample Rate", info.SampleRate + " Hz"},
					[]string{"Channels", strconv.Itoa(info.Channels)},
				)
			} else {
				rows = append(rows, []string{"Audio", "none"})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				"🎬 "+filepath.Base(input),
				[]string{"Property", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
