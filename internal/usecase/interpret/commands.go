package interpret

import (
	"fmt"
	"path/filepath"

	"github.com/aalvaropc/slidey/internal/domain"
)

type command struct {
	params []param
	run    func(in *Interpreter, st *slideState, a args) error
}

func builtinCommands() map[string]command {
	return map[string]command{
		"title": {
			params: []param{{name: "text", required: true}},
			run:    runTitle,
		},
		"text": {
			params: []param{{name: "text", required: true}},
			run:    runText,
		},
		"img": {
			params: []param{
				{name: "path", required: true},
				{name: "top", required: true},
				{name: "left", required: true},
				{name: "width"},
				{name: "height"},
			},
			run: runImage,
		},
		"chart": {
			params: []param{
				{name: "style", required: true},
				{name: "categories", required: true},
				{name: "series", required: true},
				{name: "x"},
				{name: "y"},
				{name: "cx"},
				{name: "cy"},
			},
			run: runChart,
		},
	}
}

func runTitle(_ *Interpreter, st *slideState, a args) error {
	if !st.layout.HasTitle() {
		return fmt.Errorf("layout %q has no title placeholder: %w", st.layout.Name, domain.ErrNoPlaceholder)
	}

	text, err := a.text("text")
	if err != nil {
		return err
	}
	if err := st.slide.SetTitle(text); err != nil {
		return renderError("title", err)
	}

	st.report.Title = text
	return nil
}

func runText(_ *Interpreter, st *slideState, a args) error {
	if !st.layout.HasBody() {
		return fmt.Errorf("layout %q has no body placeholder: %w", st.layout.Name, domain.ErrNoPlaceholder)
	}

	text, err := a.text("text")
	if err != nil {
		return err
	}
	if err := st.slide.AddParagraph(text, st.paragraphLevel()); err != nil {
		return renderError("text", err)
	}

	st.report.Paragraphs++
	return nil
}

func runImage(in *Interpreter, st *slideState, a args) error {
	path, err := a.text("path")
	if err != nil {
		return err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(st.baseDir, path)
	}

	top, err := a.number("top")
	if err != nil {
		return err
	}
	left, err := a.number("left")
	if err != nil {
		return err
	}
	width, err := a.optionalLength("width", st.units)
	if err != nil {
		return err
	}
	height, err := a.optionalLength("height", st.units)
	if err != nil {
		return err
	}

	if in.images == nil {
		return &domain.OpError{
			Op:   "interpret.img",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("no image loader configured"),
		}
	}
	img, err := in.images.LoadImage(path)
	if err != nil {
		return err
	}

	size := domain.PictureSize(img, width, height, in.cfg.Images.DPI)
	frame := domain.Frame{
		X:      st.units.ToEMU(left),
		Y:      st.units.ToEMU(top),
		Width:  size.Width,
		Height: size.Height,
	}
	if err := st.slide.AddPicture(img, frame); err != nil {
		return renderError("img", err)
	}

	in.log.Debug("interpret.img.added", "slide", st.index, "path", path)
	st.report.Pictures++
	return nil
}

func runChart(in *Interpreter, st *slideState, a args) error {
	styleName, err := a.text("style")
	if err != nil {
		return err
	}
	style, err := domain.ParseChartStyle(styleName)
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}

	categories, err := chartCategories(a)
	if err != nil {
		return err
	}
	series, err := chartSeries(a)
	if err != nil {
		return err
	}

	spec := domain.ChartSpec{
		Style:      style,
		Categories: categories,
		Series:     series,
		Legend:     in.cfg.Chart.Legend,
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	frame, err := chartFrame(in.cfg.Chart, st.units, a)
	if err != nil {
		return err
	}

	st.report.Charts++
	if in.charts == nil {
		return nil
	}

	plot, _ := domain.SplitChartFrame(frame, spec.Legend)
	rendered, err := in.charts.Render(spec, domain.Size{Width: plot.Width, Height: plot.Height})
	if err != nil {
		return renderError("chart", err)
	}
	if err := st.slide.AddChart(rendered, frame); err != nil {
		return renderError("chart", err)
	}

	in.log.Debug("interpret.chart.added", "slide", st.index, "style", string(style), "series", len(series))
	return nil
}

func chartCategories(a args) ([]string, error) {
	n := a.node("categories")
	if n.Kind != domain.SequenceNode {
		return nil, fmt.Errorf("categories: expected a sequence")
	}

	out := make([]string, 0, len(n.Items))
	for i, item := range n.Items {
		s, err := item.Text()
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		s, err = a.vars.ResolveString(s)
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func chartSeries(a args) ([]domain.ChartSeries, error) {
	n := a.node("series")
	if n.Kind != domain.SequenceNode {
		return nil, fmt.Errorf("series: expected a sequence")
	}

	out := make([]domain.ChartSeries, 0, len(n.Items))
	for i, item := range n.Items {
		if item.Kind != domain.MappingNode {
			return nil, fmt.Errorf("series[%d]: expected a mapping with title and data", i)
		}

		var s domain.ChartSeries
		for _, e := range item.Entries {
			switch e.Key {
			case "title":
				if e.Value.IsNull() {
					continue
				}
				t, err := e.Value.Text()
				if err != nil {
					return nil, fmt.Errorf("series[%d].title: %w", i, err)
				}
				if s.Title, err = a.vars.ResolveString(t); err != nil {
					return nil, fmt.Errorf("series[%d].title: %w", i, err)
				}
			case "data":
				if e.Value.Kind != domain.SequenceNode {
					return nil, fmt.Errorf("series[%d].data: expected a sequence", i)
				}
				for j, v := range e.Value.Items {
					f, err := v.Float()
					if err != nil {
						return nil, fmt.Errorf("series[%d].data[%d]: %w", i, j, err)
					}
					s.Values = append(s.Values, f)
				}
			default:
				return nil, fmt.Errorf("series[%d]: unexpected key %q (accepted: title, data)", i, e.Key)
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func chartFrame(cfg domain.ChartConfig, units domain.Units, a args) (domain.Frame, error) {
	x, err := a.numberOr("x", cfg.X)
	if err != nil {
		return domain.Frame{}, err
	}
	y, err := a.numberOr("y", cfg.Y)
	if err != nil {
		return domain.Frame{}, err
	}
	cx, err := a.numberOr("cx", cfg.CX)
	if err != nil {
		return domain.Frame{}, err
	}
	cy, err := a.numberOr("cy", cfg.CY)
	if err != nil {
		return domain.Frame{}, err
	}
	if cx <= 0 || cy <= 0 {
		return domain.Frame{}, fmt.Errorf("chart size must be positive (cx=%v, cy=%v)", cx, cy)
	}

	return domain.Frame{
		X:      units.ToEMU(x),
		Y:      units.ToEMU(y),
		Width:  units.ToEMU(cx),
		Height: units.ToEMU(cy),
	}, nil
}

func renderError(cmd string, err error) error {
	return &domain.OpError{
		Op:   "interpret." + cmd,
		Kind: domain.KindRender,
		Err:  fmt.Errorf("%w: %w", domain.ErrRender, err),
	}
}
