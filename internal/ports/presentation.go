package ports

import (
	"io"

	"github.com/aalvaropc/slidey/internal/domain"
)

// PresentationFactory is the entry point into the presentation library.
type PresentationFactory interface {
	// Layouts lists the library's built-in slide layouts in index order.
	Layouts() []domain.Layout
	NewPresentation(props domain.Properties) (Presentation, error)
}

// Presentation is an in-progress document.
type Presentation interface {
	AddSlide(layout domain.Layout) (Slide, error)
	Save(w io.Writer) error
}

// Slide exposes the shape-building calls the interpreter dispatches to.
type Slide interface {
	SetTitle(text string) error
	// AddParagraph appends a paragraph to body placeholder #1 at the given outline level.
	AddParagraph(text string, level int) error
	AddPicture(img domain.Image, frame domain.Frame) error
	AddChart(chart domain.RenderedChart, frame domain.Frame) error
}
