package domain

import (
	"strings"
	"testing"
)

func TestParseChartStyle(t *testing.T) {
	got, err := ParseChartStyle("column_clustered")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ChartColumnClustered {
		t.Fatalf("expected %s, got %s", ChartColumnClustered, got)
	}

	_, err = ParseChartStyle("RADAR_FILLED")
	if err == nil {
		t.Fatalf("expected error for unknown style")
	}
	if !strings.Contains(err.Error(), "PIE") {
		t.Fatalf("expected supported styles in error, got %v", err)
	}
}

func TestChartStyleNamesSorted(t *testing.T) {
	names := ChartStyleNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestChartSpecValidate(t *testing.T) {
	ok := ChartSpec{
		Style:      ChartLine,
		Categories: []string{"a", "b"},
		Series:     []ChartSeries{{Title: "s", Values: []float64{1, 2}}},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	short := ok
	short.Series = []ChartSeries{{Title: "s", Values: []float64{1}}}
	if err := short.Validate(); err == nil {
		t.Fatalf("expected error for value/category mismatch")
	}

	noSeries := ok
	noSeries.Series = nil
	if err := noSeries.Validate(); err == nil {
		t.Fatalf("expected error without series")
	}

	noCats := ok
	noCats.Categories = nil
	if err := noCats.Validate(); err == nil {
		t.Fatalf("expected error without categories")
	}
}

func TestSplitChartFrame(t *testing.T) {
	frame := Frame{X: 100, Y: 200, Width: 1000, Height: 500}

	plot, key := SplitChartFrame(frame, LegendRight)
	if plot.Width != 780 || key.Width != 220 {
		t.Fatalf("unexpected split: plot=%+v key=%+v", plot, key)
	}
	if key.X != plot.X+plot.Width || key.Y != frame.Y || key.Height != frame.Height {
		t.Fatalf("legend should sit right of the plot: plot=%+v key=%+v", plot, key)
	}

	plot, key = SplitChartFrame(frame, LegendNone)
	if plot != frame || key != (Frame{}) {
		t.Fatalf("expected the whole frame for the plot, got plot=%+v key=%+v", plot, key)
	}
}
