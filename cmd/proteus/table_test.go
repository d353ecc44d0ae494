package main

import (
	"strings"
	"testing"
)

func TestRenderTableIncludesTitleAndRows(t *testing.T) {
	rendered := renderTable(
		"🎬 clip.mp4",
		[]string{"Property", "Value"},
		[][]string{
			{"Size", "375 MB"},
			{"Resolution", "1920x1080"},
		},
		[]columnAlignment{alignLeft, alignLeft},
	)
	for _, want := range []string{"clip.mp4", "Property", "375 MB", "1920x1080"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in rendered table:\n%s", want, rendered)
		}
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	rendered := renderTable(
		"",
		[]string{"A", "B", "C"},
		[][]string{{"only"}},
		nil,
	)
	if !strings.Contains(rendered, "only") {
		t.Fatalf("expected padded row in:\n%s", rendered)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if got := renderTable("t", nil, nil, nil); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}
