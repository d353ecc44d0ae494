package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"proteus/internal/deps"
	"proteus/internal/encoder"
	"proteus/internal/media/ffprobe"
	"proteus/internal/plan"
)

func newSpeedCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags
	var factor float64
	var targetDuration float64
	var convert bool

	cmd := &cobra.Command{
		Use:   "speed <input>",
		Short: "Change playback speed, keeping audio in sync",
		Long: `Time-scale a video. Give either a rate factor or a target duration.

Examples:
  proteus speed video.mp4 -x 2          # twice as fast
  proteus speed video.mp4 -x 0.5        # half speed
  proteus speed video.mp4 -d 30         # squeeze to 30 seconds`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpeed(cmd, ctx, args[0], flags, plan.SpeedRequest{
				Factor:         factor,
				TargetDuration: targetDuration,
			}, convert)
		},
	}

	flags.bindCommon(cmd)
	cmd.Flags().Float64VarP(&factor, "factor", "x", 0, "Speed factor (2 = twice as fast, 0.5 = half speed)")
	cmd.Flags().Float64VarP(&targetDuration, "duration", "d", 0, "Target duration in seconds")
	cmd.Flags().BoolVar(&convert, "convert", false, "Re-encode into MP4 (H.264/AAC) instead of keeping the source container")
	cmd.Flags().IntVarP(&flags.quality, "quality", "q", 23, "Quality (CRF) for the re-encode")

	return cmd
}

func runSpeed(cmd *cobra.Command, ctx *commandContext, input string, flags convertFlags, req plan.SpeedRequest, convert bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	// Catch conflicting or missing rate arguments before touching the file.
	hasFactor := req.Factor != 0
	hasDuration := req.TargetDuration != 0
	if hasFactor == hasDuration || (hasFactor && req.Factor <= 0) {
		if _, err := plan.ResolveSpeedFactor(req, 0); err != nil {
			return err
		}
	}

	opts := plan.NewEncodeOptions(cfg)
	opts.InputPath = input
	opts.NoAudio = flags.noAudio
	opts.Force = flags.force
	if cmd.Flags().Changed("quality") {
		opts.Quality = flags.quality
	}
	if flags.slow {
		opts.Hardware = false
	}
	if err := opts.Validate(); err != nil {
		return err
	}

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

	factor, err := plan.ResolveSpeedFactor(req, info.Duration)
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = plan.DeriveSpeedOutput(input, factor, convert)
	}
	opts.OutputPath = output
	if err := plan.EnsureOutput(output, opts.Force); err != nil {
		return err
	}

	args, err := plan.BuildSpeed(opts, factor, info)
	if err != nil {
		return err
	}

	outDuration := 0.0
	if info.Duration > 0 {
		outDuration = info.Duration / factor
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔱 %s → %s\n", boldText.Sprint(filepath.Base(input)), cyanText.Sprint(filepath.Base(output)))
	fmt.Fprintf(out, "   %.2gx speed  %s → %s  %s\n",
		factor, formatDuration(info.Duration), formatDuration(outDuration),
		dimText.Sprintf("(%s)", encoderLabel(opts)))

	ctx.log().Debug("speed planned",
		"input", input, "output", output, "factor", factor, "args", args)

	if err := runEncodeJob(cmd, ctx, encoder.Job{
		Args:            args,
		DurationSeconds: outDuration,
		Hardware:        opts.Hardware,
		Verbose:         ctx.verbose(),
	}, output); err != nil {
		return err
	}

	printEncodeSummary(out, info.SizeBytes, output)
	return nil
}
