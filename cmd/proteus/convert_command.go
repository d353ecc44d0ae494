package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"proteus/internal/deps"
	"proteus/internal/encoder"
	"proteus/internal/estimate"
	"proteus/internal/logging"
	"proteus/internal/media/ffprobe"
	"proteus/internal/plan"
	"proteus/internal/preset"
)

// convertFlags are shared between convert and compress; compress layers the
// level presets underneath them.
type convertFlags struct {
	output     string
	quality    int
	speed      string
	audio      string
	resolution string
	noAudio    bool
	force      bool
	slow       bool
}

func (f *convertFlags) bindCommon(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (default: derived from input)")
	cmd.Flags().BoolVar(&f.noAudio, "no-audio", false, "Remove the audio track")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "Overwrite the output file if it exists")
	cmd.Flags().BoolVar(&f.slow, "slow", false, "Use software encoding (~20% smaller files, 5-10x slower)")
}

func (f *convertFlags) bindResolution(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.resolution, "resolution", "r", "", "Scale to resolution (e.g. 1920x1080 or just a height like 720)")
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert video to MP4 (H.264)",
		Long: `Convert video to MP4 (H.264/AAC).

Examples:
  proteus convert video.mov           # fast conversion (hardware accelerated)
  proteus convert video.mov --slow    # best compression (slower)
  proteus convert video.mov -q 28     # lower quality for a smaller file
  proteus convert video.mov -r 720    # scale down to 720p`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertFlow(cmd, ctx, args[0], flags, "")
		},
	}

	flags.bindCommon(cmd)
	flags.bindResolution(cmd)
	cmd.Flags().IntVarP(&flags.quality, "quality", "q", 23, "Quality (CRF): 18=high, 23=medium, 28=low/small")
	cmd.Flags().StringVarP(&flags.speed, "preset", "p", "medium", "Encoding speed: ultrafast, fast, medium, slow, veryslow")
	cmd.Flags().StringVarP(&flags.audio, "audio", "a", "192k", "Audio bitrate (e.g. 128k, 192k, 320k)")

	return cmd
}

// runConvertFlow is the shared encode pipeline behind convert and compress.
// compressLevel is empty on the convert path.
func runConvertFlow(cmd *cobra.Command, ctx *commandContext, input string, flags convertFlags, compressLevel preset.Level) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	opts := plan.NewEncodeOptions(cfg)
	opts.InputPath = input

	isCompress := compressLevel != ""
	if isCompress {
		settings, err := preset.Resolve(compressLevel)
		if err != nil {
			return err
		}
		opts.Quality = settings.CRF
		opts.AudioBitrate = settings.AudioBitrate
		opts.SpeedPreset = settings.SpeedPreset
		opts.ExtraFilters = settings.ExtraFilters
	}

	// Explicit flags win over both config defaults and level presets.
	if cmd.Flags().Changed("quality") {
		opts.Quality = flags.quality
	}
	if cmd.Flags().Changed("preset") {
		opts.SpeedPreset = flags.speed
	}
	if cmd.Flags().Changed("audio") {
		opts.AudioBitrate = flags.audio
	}
	opts.NoAudio = flags.noAudio
	opts.Force = flags.force
	if flags.slow {
		opts.Hardware = false
	}
	if flags.resolution != "" {
		spec, err := plan.ParseResolution(flags.resolution)
		if err != nil {
			return err
		}
		opts.Resolution = spec
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	if err := plan.EnsureInput(input); err != nil {
		return err
	}
	output := flags.output
	if output == "" {
		if isCompress {
			output = plan.DeriveCompressOutput(input)
		} else {
			output = plan.DeriveConvertOutput(input)
		}
	}
	opts.OutputPath = output
	if err := plan.EnsureOutput(output, opts.Force); err != nil {
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

	_, targetHeight, err := plan.ResolveResolution(opts.Resolution, info.Width, info.Height)
	if err != nil {
		return err
	}
	estimateHeight := 0
	if opts.Resolution != nil {
		estimateHeight = targetHeight
	}
	est := estimate.Heuristic(info, opts.Quality, estimateHeight)

	args, err := plan.BuildConvert(opts, info)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔱 %s → %s\n", boldText.Sprint(filepath.Base(input)), cyanText.Sprint(filepath.Base(output)))
	fmt.Fprintf(out, "   %s → ~%s estimated  %s\n",
		formatSize(info.SizeBytes), formatSize(est.Bytes), dimText.Sprintf("(%s)", encoderLabel(opts)))
	fmt.Fprintln(out, dimText.Sprint(encodePathHint(opts.Hardware)))
	if hint := downscaleHint(input, opts, info, compressLevel); hint != "" {
		fmt.Fprintln(out, hint)
	}

	ctx.log().Debug("convert planned",
		"input", input, "output", output, "crf", opts.Quality,
		"hardware", opts.Hardware, "args", args)

	if err := runEncodeJob(cmd, ctx, encoder.Job{
		Args:            args,
		DurationSeconds: info.Duration,
		Hardware:        opts.Hardware,
		Verbose:         ctx.verbose(),
	}, output); err != nil {
		return err
	}

	printEncodeSummary(out, info.SizeBytes, output)
	if hint := furtherCompressionHint(input, opts, info, compressLevel, targetHeight); hint != "" {
		fmt.Fprintln(out, hint)
	}
	return nil
}

func encoderLabel(opts plan.EncodeOptions) string {
	if opts.Hardware {
		return "⚡ hardware"
	}
	return fmt.Sprintf("CRF %d, %s", opts.Quality, opts.SpeedPreset)
}

func encodePathHint(hardware bool) string {
	if hardware {
		return "📦 Add --slow for ~20% smaller files (5-10x slower)"
	}
	return "⚡ Omit --slow for 5-10x faster encoding"
}

// downscaleHint suggests scaling sources above 1080p when no resolution was
// requested.
func downscaleHint(input string, opts plan.EncodeOptions, info ffprobe.VideoInfo, level preset.Level) string {
	if info.Height <= 1080 || opts.Resolution != nil {
		return ""
	}
	extra := make([]string, 0, 4)
	subcommand := "convert"
	if level != "" {
		subcommand = "compress"
		if level != preset.LevelMedium {
			extra = append(extra, "-l", string(level))
		}
	} else if opts.Quality != 23 {
		extra = append(extra, "-q", fmt.Sprintf("%d", opts.Quality))
	}
	extra = append(extra, "-r", "1080")
	if opts.Force {
		extra = append(extra, "-f")
	}
	if !opts.Hardware {
		extra = append(extra, "--slow")
	}
	return dimText.Sprintf("📐 Video is %dx%d. Scale down for faster encoding + smaller file:", info.Width, info.Height) +
		"\n   " + cyanText.Sprint(suggestCommand(subcommand, input, extra...))
}

// furtherCompressionHint suggests the next knobs to turn after a successful
// encode: software path, lower resolution, or the next heavier level.
func furtherCompressionHint(input string, opts plan.EncodeOptions, info ffprobe.VideoInfo, level preset.Level, targetHeight int) string {
	extra := make([]string, 0, 6)
	if opts.Hardware {
		extra = append(extra, "--slow")
	}
	currentHeight := info.Height
	if opts.Resolution != nil && targetHeight > 0 {
		currentHeight = targetHeight
	}
	switch {
	case currentHeight > 720:
		extra = append(extra, "-r", "720")
	case currentHeight > 480:
		extra = append(extra, "-r", "480")
	}
	subcommand := "convert"
	if level != "" {
		subcommand = "compress"
		if next, ok := preset.Next(level); ok {
			extra = append(extra, "-l", string(next))
		}
	}
	if len(extra) == 0 {
		return ""
	}
	extra = append(extra, "-f")
	return dimText.Sprint("📉 Compress further: ") + cyanText.Sprint(suggestCommand(subcommand, input, extra...))
}

// runEncodeJob shows a tip and progress bar (unless verbose), runs the job,
// and reports failures and interrupts with the partial output path.
func runEncodeJob(cmd *cobra.Command, ctx *commandContext, job encoder.Job, outputPath string) error {
	runner, err := ctx.runner()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !job.Verbose {
		fmt.Fprintln(out, dimText.Sprint(randomTip()))
		sink := newProgressSink(out, "Converting")
		job.OnProgress = sink.update
		defer sink.finish()
	}

	if err := runner.Run(cmd.Context(), job); err != nil {
		if cmd.Context().Err() != nil {
			fmt.Fprintf(out, "\n%s  partial output left at %s\n",
				redBold.Sprint("✗ Interrupted"), outputPath)
			return err
		}
		fmt.Fprintf(out, "%s — run with %s to see full ffmpeg output\n",
			redBold.Sprint("✗ Failed"), cyanText.Sprint("--verbose"))
		ctx.log().Debug("encode failed", logging.Error(err))
		return err
	}
	return nil
}
