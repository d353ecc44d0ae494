package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"proteus/internal/deps"
	"proteus/internal/estimate"
	"proteus/internal/media/ffprobe"
	"proteus/internal/plan"
	"proteus/internal/preset"
)

func newSizesCommand(ctx *commandContext) *cobra.Command {
	var thorough bool
	var sampleSeconds int

	cmd := &cobra.Command{
		Use:   "sizes <input>",
		Short: "Preview expected file sizes for different compression settings",
		Long: `Preview estimated output sizes without committing to a long encode.

The default estimates come from an empirical CRF ratio table. With
--thorough, each compression level is measured by encoding a short sample
of the source and extrapolating, which is slower but content-aware.`,
		Args: cobra.ExactArgs(1),
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
			info.Path = input

			// Measured estimates per level, keyed by CRF, when requested.
			sampled := map[int]estimate.Estimate{}
			if thorough {
				seconds := cfg.Estimate.SampleSeconds
				if cmd.Flags().Changed("seconds") {
					seconds = sampleSeconds
				}
				sampler := estimate.NewSampler(cfg.Tools.FFmpegBinary, seconds)
				opts := plan.NewEncodeOptions(cfg)
				opts.InputPath = input
				fmt.Fprintln(cmd.OutOrStdout(), dimText.Sprintf("Sampling %d seconds per level...", sampler.SampleSeconds))
				estimates, err := sampler.SampleLevels(cmd.Context(), info, opts)
				if err != nil {
					return err
				}
				for _, est := range estimates {
					sampled[est.CRF] = est
				}
			}

			name := filepath.Base(input)
			short := name
			if len(short) >= 20 {
				short = "video.mp4"
			}

			type row struct {
				label string
				crf   int
				cmd   string
			}
			settings := []row{
				{"High quality", 18, suggestCommand("convert", short, "-q", "18")},
				{"Good quality (default)", 23, suggestCommand("convert", short)},
				{"Smaller file", 28, suggestCommand("convert", short, "-q", "28")},
			}
			for _, level := range preset.Levels() {
				crf := mustSettings(level).CRF
				suggestion := suggestCommand("compress", short, "-l", string(level))
				if level == preset.LevelMedium {
					suggestion = suggestCommand("compress", short)
				}
				settings = append(settings, row{"compress -l " + string(level), crf, suggestion})
			}

			rows := make([][]string, 0, len(settings))
			for _, r := range settings {
				est, measured := sampled[r.crf]
				if !measured {
					est = estimate.Heuristic(info, r.crf, 0)
				}
				size := "~" + formatSize(est.Bytes)
				if est.Method == estimate.MethodSampled {
					size = formatSize(est.Bytes)
				}
				reduction := ""
				if info.SizeBytes > 0 {
					pct := float64(info.SizeBytes-est.Bytes) / float64(info.SizeBytes) * 100
					reduction = "-" + formatPercent(pct)
				}
				rows = append(rows, []string{r.label, strconv.Itoa(r.crf), size, reduction, r.cmd})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n🔱 %s  (%s)\n\n", boldText.Sprint(name), formatSize(info.SizeBytes))
			fmt.Fprintln(out, renderTable(
				"Estimated Output Sizes",
				[]string{"Setting", "CRF", "Est. Size", "Reduction", "Command"},
				rows,
				[]columnAlignment{alignLeft, alignCenter, alignRight, alignRight, alignLeft},
			))
			if thorough {
				fmt.Fprintln(out, dimText.Sprint("\nNote: level rows are measured from a sample encode; others are table estimates."))
			} else {
				fmt.Fprintln(out, dimText.Sprint("\nNote: estimates are approximate. Actual sizes vary by video content."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&thorough, "thorough", false, "Measure levels with sample encodes instead of table estimates")
	cmd.Flags().IntVar(&sampleSeconds, "seconds", 0, "Sample window in seconds for --thorough (default from config)")

	return cmd
}

func mustSettings(level preset.Level) preset.Settings {
	settings, err := preset.Resolve(level)
	if err != nil {
		panic(err)
	}
	return settings
}
