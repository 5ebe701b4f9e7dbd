// Package gochart renders chart specs to PNG images with go-chart.
package gochart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
)

const defaultDPI = 144

type Renderer struct {
	dpi float64
}

type Option func(*Renderer)

// WithDPI sets the raster resolution used to turn EMU sizes into pixels.
func WithDPI(dpi float64) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{dpi: defaultDPI}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// renderable is the common surface of the go-chart chart types.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func (r *Renderer) Render(spec domain.ChartSpec, size domain.Size) (domain.RenderedChart, error) {
	if err := spec.Validate(); err != nil {
		return domain.RenderedChart{}, err
	}

	w := r.pixels(size.Width)
	h := r.pixels(size.Height)
	if w <= 0 || h <= 0 {
		return domain.RenderedChart{}, fmt.Errorf("chart size %dx%d px is empty", w, h)
	}

	var c renderable
	switch spec.Style {
	case domain.ChartColumnClustered:
		c = r.columns(spec, w, h)
	case domain.ChartColumnStacked100, domain.ChartBarStacked100:
		c = r.stacked(spec, w, h)
	case domain.ChartLine, domain.ChartLineMarkers, domain.ChartArea, domain.ChartXYScatter:
		c = r.lines(spec, w, h)
	case domain.ChartPie, domain.ChartDoughnut:
		c = r.radial(spec, w, h)
	default:
		return domain.RenderedChart{}, fmt.Errorf("unsupported chart style %s", spec.Style)
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return domain.RenderedChart{}, fmt.Errorf("render %s: %w", spec.Style, err)
	}

	return domain.RenderedChart{
		Data:   buf.Bytes(),
		MIME:   "image/png",
		Legend: legendFor(spec),
	}, nil
}

func (r *Renderer) pixels(l domain.Length) int {
	return int(math.Round(l.Inches() * r.dpi))
}

func (r *Renderer) columns(spec domain.ChartSpec, w, h int) renderable {
	bars := make([]chart.Value, 0, len(spec.Categories)*len(spec.Series))
	for ci, cat := range spec.Categories {
		for si, s := range spec.Series {
			label := ""
			if si == 0 {
				label = cat
			}
			bars = append(bars, chart.Value{
				Label: label,
				Value: s.Values[ci],
				Style: fill(chart.GetDefaultColor(si)),
			})
		}
	}

	lo, hi := valueRange(spec, true)
	return chart.BarChart{
		Width:  w,
		Height: h,
		DPI:    r.dpi,
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: lo, Max: hi}},
		Bars:   bars,
	}
}

func (r *Renderer) stacked(spec domain.ChartSpec, w, h int) renderable {
	bars := make([]chart.StackedBar, 0, len(spec.Categories))
	for ci, cat := range spec.Categories {
		values := make([]chart.Value, 0, len(spec.Series))
		for si, s := range spec.Series {
			values = append(values, chart.Value{
				Value: s.Values[ci],
				Style: fill(chart.GetDefaultColor(si)),
			})
		}
		bars = append(bars, chart.StackedBar{Name: cat, Values: values})
	}

	return chart.StackedBarChart{
		Width:        w,
		Height:       h,
		DPI:          r.dpi,
		IsHorizontal: spec.Style == domain.ChartBarStacked100,
		Bars:         bars,
	}
}

func (r *Renderer) lines(spec domain.ChartSpec, w, h int) renderable {
	xs, ticks := xAxis(spec)

	series := make([]chart.Series, 0, len(spec.Series))
	for si, s := range spec.Series {
		color := chart.GetDefaultColor(si)
		style := chart.Style{StrokeColor: color, StrokeWidth: 2}
		switch spec.Style {
		case domain.ChartLineMarkers:
			style.DotColor = color
			style.DotWidth = 4
		case domain.ChartArea:
			style.FillColor = color.WithAlpha(96)
		case domain.ChartXYScatter:
			style.StrokeWidth = chart.Disabled
			style.DotColor = color
			style.DotWidth = 5
		}

		series = append(series, chart.ContinuousSeries{
			Name:    s.Title,
			Style:   style,
			XValues: xs,
			YValues: s.Values,
		})
	}

	xlo, xhi := xs[0], xs[len(xs)-1]
	for _, x := range xs {
		xlo = math.Min(xlo, x)
		xhi = math.Max(xhi, x)
	}
	if xhi == xlo {
		xlo, xhi = xlo-1, xhi+1
	}
	ylo, yhi := valueRange(spec, spec.Style == domain.ChartArea)

	return chart.Chart{
		Width:  w,
		Height: h,
		DPI:    r.dpi,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: xlo, Max: xhi},
		},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: ylo, Max: yhi}},
		Series: series,
	}
}

func (r *Renderer) radial(spec domain.ChartSpec, w, h int) renderable {
	// Only the first series is drawn, as a single ring or pie.
	values := make([]chart.Value, 0, len(spec.Categories))
	for ci, cat := range spec.Categories {
		values = append(values, chart.Value{
			Label: cat,
			Value: spec.Series[0].Values[ci],
			Style: fill(chart.GetDefaultColor(ci)),
		})
	}

	if spec.Style == domain.ChartDoughnut {
		return chart.DonutChart{Width: w, Height: h, DPI: r.dpi, Values: values}
	}
	return chart.PieChart{Width: w, Height: h, DPI: r.dpi, Values: values}
}

// xAxis places categories on the x axis. Numeric categories are used as
// coordinates; otherwise categories are spaced evenly and labelled.
func xAxis(spec domain.ChartSpec) ([]float64, []chart.Tick) {
	xs := make([]float64, len(spec.Categories))
	numeric := spec.Style == domain.ChartXYScatter
	for i, c := range spec.Categories {
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			numeric = false
			break
		}
		xs[i] = f
	}
	if numeric {
		return xs, nil
	}

	ticks := make([]chart.Tick, len(spec.Categories))
	for i, c := range spec.Categories {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: c}
	}
	return xs, ticks
}

// valueRange spans every series value, optionally anchored at zero, and is
// never empty.
func valueRange(spec domain.ChartSpec, fromZero bool) (float64, float64) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, s := range spec.Series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if fromZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

func fill(c drawing.Color) chart.Style {
	return chart.Style{FillColor: c, StrokeColor: c}
}

// legendFor lists one entry per series, or per category for pie and
// doughnut charts, in the colors used by the renderer.
func legendFor(spec domain.ChartSpec) []domain.LegendEntry {
	if spec.Legend == domain.LegendNone {
		return nil
	}

	if spec.Style.IsRadial() {
		out := make([]domain.LegendEntry, 0, len(spec.Categories))
		for i, c := range spec.Categories {
			out = append(out, domain.LegendEntry{Label: c, Color: argb(chart.GetDefaultColor(i))})
		}
		return out
	}

	out := make([]domain.LegendEntry, 0, len(spec.Series))
	for i, s := range spec.Series {
		label := s.Title
		if label == "" {
			label = fmt.Sprintf("Series %d", i+1)
		}
		out = append(out, domain.LegendEntry{Label: label, Color: argb(chart.GetDefaultColor(i))})
	}
	return out
}

func argb(c drawing.Color) string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}
