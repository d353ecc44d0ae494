package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "Show common format conversion examples",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "🔱 "+boldText.Sprint("Format Cheatsheet"))
			fmt.Fprintln(out)
			for _, entry := range [][2]string{
				{".mov → .mp4", suggestCommand("convert", "video.mov")},
				{".avi → .mp4", suggestCommand("convert", "video.avi")},
				{".mkv → .mp4", suggestCommand("convert", "video.mkv")},
				{"Any → .mp4 (small)", suggestCommand("convert", "video.mov", "-q", "28")},
				{"Any → .mp4 (720p)", suggestCommand("convert", "video.mov", "-r", "720")},
				{"Remove audio", suggestCommand("convert", "video.mov", "--no-audio")},
				{"Twice as fast", suggestCommand("speed", "video.mp4", "-x", "2")},
			} {
				fmt.Fprintf(out, "%s\n  %s\n\n", boldText.Sprint(entry[0]), cyanText.Sprint(entry[1]))
			}
			return nil
		},
	}
}
