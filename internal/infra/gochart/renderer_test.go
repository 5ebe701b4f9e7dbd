package gochart

import (
	"bytes"
	"image"
	_ "image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/slidey/internal/domain"
)

func sampleSpec(style domain.ChartStyle) domain.ChartSpec {
	return domain.ChartSpec{
		Style:      style,
		Categories: []string{"Q1", "Q2", "Q3"},
		Series: []domain.ChartSeries{
			{Title: "North", Values: []float64{3, 5, 4}},
			{Title: "South", Values: []float64{2, 1, 6}},
		},
		Legend: domain.LegendRight,
	}
}

func TestRender_AllStyles(t *testing.T) {
	r := NewRenderer(WithDPI(100))
	size := domain.Size{Width: 4 * domain.EMUPerInch, Height: 3 * domain.EMUPerInch}

	for _, name := range domain.ChartStyleNames() {
		t.Run(name, func(t *testing.T) {
			style, _ := domain.ParseChartStyle(name)
			out, err := r.Render(sampleSpec(style), size)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if out.MIME != "image/png" {
				t.Fatalf("expected image/png, got %s", out.MIME)
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if format != "png" || cfg.Width != 400 || cfg.Height != 300 {
				t.Fatalf("expected 400x300 png, got %dx%d %s", cfg.Width, cfg.Height, format)
			}
		})
	}
}

func TestRender_SingleCategory(t *testing.T) {
	spec := domain.ChartSpec{
		Style:      domain.ChartLine,
		Categories: []string{"only"},
		Series:     []domain.ChartSeries{{Title: "flat", Values: []float64{7}}},
	}
	if _, err := NewRenderer().Render(spec, domain.Size{Width: 3 * domain.EMUPerInch, Height: 2 * domain.EMUPerInch}); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRender_RejectsBadData(t *testing.T) {
	spec := sampleSpec(domain.ChartColumnClustered)
	spec.Series[1].Values = []float64{1}

	if _, err := NewRenderer().Render(spec, domain.Size{Width: domain.EMUPerInch, Height: domain.EMUPerInch}); err == nil {
		t.Fatalf("expected error for mismatched data")
	}
}

func TestLegendFor(t *testing.T) {
	got := legendFor(sampleSpec(domain.ChartLine))
	want := []domain.LegendEntry{
		{Label: "North", Color: "FF0074D9"},
		{Label: "South", Color: "FF00D965"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("legend mismatch (-want +got):\n%s", diff)
	}

	pie := legendFor(sampleSpec(domain.ChartPie))
	if len(pie) != 3 || pie[0].Label != "Q1" {
		t.Fatalf("expected one entry per category, got %+v", pie)
	}

	spec := sampleSpec(domain.ChartLine)
	spec.Legend = domain.LegendNone
	if entries := legendFor(spec); entries != nil {
		t.Fatalf("expected no legend, got %+v", entries)
	}
}

func TestXAxis_NumericScatter(t *testing.T) {
	spec := domain.ChartSpec{Style: domain.ChartXYScatter, Categories: []string{"1.5", "3", "10"}}
	xs, ticks := xAxis(spec)
	if diff := cmp.Diff([]float64{1.5, 3, 10}, xs); diff != "" {
		t.Fatalf("xs mismatch (-want +got):\n%s", diff)
	}
	if ticks != nil {
		t.Fatalf("expected automatic ticks, got %+v", ticks)
	}

	spec.Style = domain.ChartLine
	xs, ticks = xAxis(spec)
	if xs[2] != 2 || ticks[2].Label != "10" {
		t.Fatalf("expected evenly spaced categories, got xs=%v ticks=%+v", xs, ticks)
	}
}
