package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	boldText  = color.New(color.Bold)
	cyanText  = color.New(color.FgCyan)
	dimText   = color.New(color.Faint)
	greenBold = color.New(color.FgGreen, color.Bold)
	redBold   = color.New(color.FgRed, color.Bold)
)

// Tips shown before an encode starts. Each one names a runnable command.
var tips = []string{
	"Tip: Use " + cyanText.Sprint("proteus compress video.mp4 -l heavy") + " for smaller files",
	"Tip: Use " + cyanText.Sprint("proteus compress video.mp4 -l extreme") + " for max compression",
	"Tip: Use " + cyanText.Sprint("proteus convert video.mov -r 720") + " to scale to 720p",
	"Tip: Use " + cyanText.Sprint("proteus convert video.mov --no-audio") + " to remove audio",
	"Tip: Use " + cyanText.Sprint("proteus sizes video.mp4") + " to preview all compression options",
	"Tip: Use " + cyanText.Sprint("proteus info video.mp4") + " to inspect codec & resolution",
	"Tip: Use " + cyanText.Sprint("proteus docs") + " to view full documentation",
}

func randomTip() string {
	return tips[rand.Intn(len(tips))]
}

// formatSize renders bytes as a decimal human size ("1.5 GB").
func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}

// formatDuration renders seconds as m:ss (or h:mm:ss above an hour).
func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "0:00"
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// compressionSummary renders the post-encode size comparison line.
func compressionSummary(inputBytes, outputBytes int64) string {
	done := greenBold.Sprint("✓ Done")
	if inputBytes <= 0 {
		return fmt.Sprintf("%s  → %s", done, formatSize(outputBytes))
	}
	if outputBytes >= inputBytes {
		return fmt.Sprintf("%s  %s → %s", done, formatSize(inputBytes), formatSize(outputBytes))
	}
	factor := float64(inputBytes) / float64(outputBytes)
	saved := inputBytes - outputBytes
	return fmt.Sprintf("%s  %s → %s  %s  %s",
		done,
		formatSize(inputBytes),
		formatSize(outputBytes),
		cyanText.Sprintf("%.1fx smaller", factor),
		dimText.Sprintf("(saved %s)", formatSize(saved)))
}

// printEncodeSummary renders the before/after size line for a finished
// encode. A stat failure on the fresh output is unexpected but not fatal.
func printEncodeSummary(out io.Writer, inputBytes int64, outputPath string) {
	stat, err := os.Stat(outputPath)
	if err != nil {
		fmt.Fprintln(out, greenBold.Sprint("✓ Done"))
		return
	}
	fmt.Fprintln(out, compressionSummary(inputBytes, stat.Size()))
}

// quoteArg shell-quotes a path for a suggested command when it needs it.
func quoteArg(path string) string {
	if strings.ContainsAny(path, " '\"") {
		return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
	}
	return path
}

// suggestCommand joins a proteus invocation for a hint line.
func suggestCommand(subcommand, input string, extra ...string) string {
	parts := append([]string{"proteus", subcommand, quoteArg(input)}, extra...)
	return strings.Join(parts, " ")
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 0, 64) + "%"
}
