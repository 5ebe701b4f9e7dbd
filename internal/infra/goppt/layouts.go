package goppt

import "github.com/aalvaropc/slidey/internal/domain"

type layoutStyle struct {
	layout domain.Layout
	// bullets marks layouts whose body holds an outline rather than a subtitle or caption.
	bullets bool
	// centered titles are used by the title and section layouts.
	centered bool
}

func frame(x, y, w, h float64) *domain.Frame {
	return &domain.Frame{
		X:      domain.UnitsInches.ToEMU(x),
		Y:      domain.UnitsInches.ToEMU(y),
		Width:  domain.UnitsInches.ToEMU(w),
		Height: domain.UnitsInches.ToEMU(h),
	}
}

var (
	contentTitle = frame(0.5, 0.3, 9.0, 0.94)
	contentBody  = frame(0.5, 1.32, 9.0, 3.9)
)

// catalogue mirrors the default Office theme layouts in index order, placed
// on a 16:9 slide of 10in x 5.625in.
var catalogue = []layoutStyle{
	{layout: domain.Layout{Name: "Title Slide", Title: frame(0.75, 1.6, 8.5, 1.2), Body: frame(1.5, 3.0, 7.0, 1.4)}, centered: true},
	{layout: domain.Layout{Name: "Title and Content", Title: contentTitle, Body: contentBody}, bullets: true},
	{layout: domain.Layout{Name: "Section Header", Title: frame(0.79, 1.4, 8.5, 1.8), Body: frame(0.79, 3.3, 8.5, 1.0)}, centered: true},
	{layout: domain.Layout{Name: "Two Content", Title: contentTitle, Body: frame(0.5, 1.32, 4.4, 3.9)}, bullets: true},
	{layout: domain.Layout{Name: "Comparison", Title: contentTitle, Body: frame(0.5, 1.3, 4.4, 0.55)}},
	{layout: domain.Layout{Name: "Title Only", Title: contentTitle}},
	{layout: domain.Layout{Name: "Blank"}},
	{layout: domain.Layout{Name: "Content with Caption", Title: frame(0.5, 0.4, 3.3, 1.0), Body: frame(4.1, 0.4, 5.4, 4.8)}, bullets: true},
	{layout: domain.Layout{Name: "Picture with Caption", Title: frame(1.96, 3.94, 6.0, 0.47), Body: frame(1.96, 4.41, 6.0, 0.67)}},
	{layout: domain.Layout{Name: "Title and Vertical Text", Title: contentTitle, Body: contentBody}, bullets: true},
	{layout: domain.Layout{Name: "Vertical Title and Text", Title: frame(7.25, 0.3, 2.25, 4.9), Body: frame(0.5, 0.3, 6.6, 4.9)}, bullets: true},
}

func init() {
	for i := range catalogue {
		catalogue[i].layout.Index = i
	}
}

// Layouts returns the built-in layouts in index order.
func Layouts() []domain.Layout {
	out := make([]domain.Layout, len(catalogue))
	for i, ls := range catalogue {
		out[i] = ls.layout
	}
	return out
}

func styleOf(l domain.Layout) layoutStyle {
	if l.Index >= 0 && l.Index < len(catalogue) {
		return catalogue[l.Index]
	}
	return layoutStyle{layout: l}
}
