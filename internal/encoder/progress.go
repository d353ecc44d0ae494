package encoder

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// ProgressEvent is one progress batch parsed from ffmpeg's -progress output.
type ProgressEvent struct {
	// Percent is 0-100, or -1 when the source duration is unknown.
	Percent float64
	OutTime time.Duration
	FPS     float64
	// Speed is the encode rate relative to realtime (e.g. 3.2 for 3.2x).
	Speed float64
	Done  bool
}

// consumeProgress reads ffmpeg -progress key=value output and emits one
// event per batch. ffmpeg terminates each batch with a progress= line, so
// that key doubles as the flush marker.
func consumeProgress(r io.Reader, totalSeconds float64, emit func(ProgressEvent)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var batch ProgressEvent
	batch.Percent = -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "out_time_us", "out_time_ms":
			if us, err := strconv.ParseInt(value, 10, 64); err == nil && us >= 0 {
				batch.OutTime = time.Duration(us) * time.Microsecond
			}
		case "out_time":
			if d, ok := parseClock(value); ok {
				batch.OutTime = d
			}
		case "fps":
			if fps, err := strconv.ParseFloat(value, 64); err == nil && fps >= 0 {
				batch.FPS = fps
			}
		case "speed":
			if speed, err := strconv.ParseFloat(strings.TrimSuffix(value, "x"), 64); err == nil && speed >= 0 {
				batch.Speed = speed
			}
		case "progress":
			if totalSeconds > 0 {
				percent := batch.OutTime.Seconds() / totalSeconds * 100
				if percent > 100 {
					percent = 100
				}
				batch.Percent = percent
			}
			if value == "end" {
				batch.Done = true
				batch.Percent = 100
			}
			if emit != nil {
				emit(batch)
			}
			done := batch.Done
			batch = ProgressEvent{Percent: -1}
			if done {
				return scanner.Err()
			}
		}
	}
	return scanner.Err()
}

// parseClock parses ffmpeg's HH:MM:SS.micros timestamps.
func parseClock(value string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, false
	}
	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	seconds, errS := strconv.ParseFloat(parts[2], 64)
	if errH != nil || errM != nil || errS != nil || hours < 0 || minutes < 0 || seconds < 0 {
		return 0, false
	}
	total := float64(hours)*3600 + float64(minutes)*60 + seconds
	return time.Duration(total * float64(time.Second)), true
}
