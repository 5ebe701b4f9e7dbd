package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ChartStyle names a chart type. Names follow the Office chart-type enumeration.
type ChartStyle string

const (
	ChartColumnClustered  ChartStyle = "COLUMN_CLUSTERED"
	ChartColumnStacked100 ChartStyle = "COLUMN_STACKED_100"
	ChartBarStacked100    ChartStyle = "BAR_STACKED_100"
	ChartLine             ChartStyle = "LINE"
	ChartLineMarkers      ChartStyle = "LINE_MARKERS"
	ChartArea             ChartStyle = "AREA"
	ChartXYScatter        ChartStyle = "XY_SCATTER"
	ChartPie              ChartStyle = "PIE"
	ChartDoughnut         ChartStyle = "DOUGHNUT"
)

var chartStyles = map[ChartStyle]bool{
	ChartColumnClustered:  true,
	ChartColumnStacked100: true,
	ChartBarStacked100:    true,
	ChartLine:             true,
	ChartLineMarkers:      true,
	ChartArea:             true,
	ChartXYScatter:        true,
	ChartPie:              true,
	ChartDoughnut:         true,
}

// ParseChartStyle validates a chart style name.
func ParseChartStyle(s string) (ChartStyle, error) {
	st := ChartStyle(strings.ToUpper(strings.TrimSpace(s)))
	if !chartStyles[st] {
		return "", fmt.Errorf("unknown chart style %q (supported: %s)", s, strings.Join(ChartStyleNames(), ", "))
	}
	return st, nil
}

// ChartStyleNames lists the supported styles in alphabetical order.
func ChartStyleNames() []string {
	out := make([]string, 0, len(chartStyles))
	for st := range chartStyles {
		out = append(out, string(st))
	}
	sort.Strings(out)
	return out
}

// IsRadial reports whether the style plots a single series around a circle.
func (s ChartStyle) IsRadial() bool {
	return s == ChartPie || s == ChartDoughnut
}

// LegendPosition controls where the legend goes relative to the plot.
type LegendPosition string

const (
	LegendRight LegendPosition = "right"
	LegendNone  LegendPosition = "none"
)

// ChartSeries is one named row of chart data.
type ChartSeries struct {
	Title  string
	Values []float64
}

// ChartSpec is the chart data handed to a renderer.
type ChartSpec struct {
	Style      ChartStyle
	Categories []string
	Series     []ChartSeries
	Legend     LegendPosition
}

// Validate checks the data shape: at least one series, and every series
// carries exactly one value per category.
func (c ChartSpec) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("chart needs at least one category")
	}
	if len(c.Series) == 0 {
		return fmt.Errorf("chart needs at least one series")
	}
	for i, s := range c.Series {
		if len(s.Values) != len(c.Categories) {
			return fmt.Errorf("series[%d] %q has %d values for %d categories", i, s.Title, len(s.Values), len(c.Categories))
		}
	}
	return nil
}

// LegendEntry is one label of a chart legend with its series colour (ARGB hex).
type LegendEntry struct {
	Label string
	Color string
}

// RenderedChart is a chart turned into an image the presentation can embed.
type RenderedChart struct {
	Data   []byte
	MIME   string
	Legend []LegendEntry
}

// legendShare is the part of a chart frame given to a right-hand legend.
const legendShare = 0.22

// SplitChartFrame divides a chart frame into the plot area and the legend
// area. With no legend the plot takes the whole frame.
func SplitChartFrame(frame Frame, legend LegendPosition) (plot, key Frame) {
	if legend != LegendRight {
		return frame, Frame{}
	}
	keyWidth := Length(float64(frame.Width) * legendShare)
	plot = Frame{X: frame.X, Y: frame.Y, Width: frame.Width - keyWidth, Height: frame.Height}
	key = Frame{X: frame.X + plot.Width, Y: frame.Y, Width: keyWidth, Height: frame.Height}
	return plot, key
}
