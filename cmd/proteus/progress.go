package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"proteus/internal/encoder"
)

// progressSink renders encode progress, either as an interactive bar or as
// occasional plain lines when stdout is not a terminal.
type progressSink struct {
	bar         *progressbar.ProgressBar
	out         io.Writer
	lastPrinted int
}

func newProgressSink(out io.Writer, label string) *progressSink {
	if file, ok := out.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		bar := progressbar.NewOptions(100,
			progressbar.OptionSetDescription(label),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer: "█", SaucerPadding: "░", BarStart: "", BarEnd: "",
			}),
		)
		return &progressSink{bar: bar, out: out}
	}
	return &progressSink{out: out, lastPrinted: -10}
}

func (p *progressSink) update(ev encoder.ProgressEvent) {
	if ev.Percent < 0 {
		return
	}
	percent := int(ev.Percent)
	if p.bar != nil {
		_ = p.bar.Set(percent)
		return
	}
	// Plain output: one line every 10 percent so logs stay readable.
	if percent >= p.lastPrinted+10 {
		fmt.Fprintf(p.out, "progress %d%%\n", percent)
		p.lastPrinted = percent
	}
}

func (p *progressSink) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
