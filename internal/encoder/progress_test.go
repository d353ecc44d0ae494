package encoder

import (
	"strings"
	"testing"
	"time"
)

const progressStream = `frame=120
fps=59.7
out_time_us=5000000
out_time=00:00:05.000000
speed=1.99x
progress=continue
frame=240
fps=60.1
out_time_us=10000000
out_time=00:00:10.000000
speed=2.01x
progress=end
`

func TestConsumeProgressEmitsPerBatch(t *testing.T) {
	var events []ProgressEvent
	err := consumeProgress(strings.NewReader(progressStream), 20, func(ev ProgressEvent) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(events))
	}

	first := events[0]
	if first.OutTime != 5*time.Second {
		t.Fatalf("expected 5s out_time, got %s", first.OutTime)
	}
	if first.Percent != 25 {
		t.Fatalf("expected 25%%, got %v", first.Percent)
	}
	if first.FPS != 59.7 || first.Speed != 1.99 {
		t.Fatalf("unexpected rates: %+v", first)
	}
	if first.Done {
		t.Fatal("first batch should not be terminal")
	}

	last := events[1]
	if !last.Done {
		t.Fatal("progress=end should mark the batch done")
	}
	if last.Percent != 100 {
		t.Fatalf("terminal batch should report 100%%, got %v", last.Percent)
	}
}

func TestConsumeProgressUnknownDuration(t *testing.T) {
	var events []ProgressEvent
	if err := consumeProgress(strings.NewReader(progressStream), 0, func(ev ProgressEvent) {
		events = append(events, ev)
	}); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if events[0].Percent != -1 {
		t.Fatalf("expected unknown percent, got %v", events[0].Percent)
	}
	if events[1].Percent != 100 {
		t.Fatalf("terminal batch still reports 100%%, got %v", events[1].Percent)
	}
}

func TestConsumeProgressClampsOverrun(t *testing.T) {
	stream := "out_time_us=30000000\nprogress=continue\n"
	var events []ProgressEvent
	if err := consumeProgress(strings.NewReader(stream), 20, func(ev ProgressEvent) {
		events = append(events, ev)
	}); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if events[0].Percent != 100 {
		t.Fatalf("expected clamp at 100%%, got %v", events[0].Percent)
	}
}

func TestParseClock(t *testing.T) {
	d, ok := parseClock("01:02:03.500000")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Hour + 2*time.Minute + 3*time.Second + 500*time.Millisecond
	if d != want {
		t.Fatalf("expected %s, got %s", want, d)
	}
	if _, ok := parseClock("N/A"); ok {
		t.Fatal("expected N/A to fail")
	}
}
