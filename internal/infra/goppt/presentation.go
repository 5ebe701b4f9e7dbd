// Package goppt builds presentations with GoPPT.
//
// Slides are buffered while the deck is interpreted and materialised on Save,
// so a title can be replaced until the presentation is written.
package goppt

import (
	"bytes"
	"fmt"
	"io"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
)

const (
	colorTitle  = "FF1E293B"
	colorBody   = "FF334155"
	colorLegend = "FF475569"
)

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

var _ ports.PresentationFactory = (*Factory)(nil)

func (f *Factory) Layouts() []domain.Layout { return Layouts() }

func (f *Factory) NewPresentation(props domain.Properties) (ports.Presentation, error) {
	return &Presentation{props: props}, nil
}

// Presentation collects slides until Save.
type Presentation struct {
	props  domain.Properties
	slides []*slide
}

type paragraph struct {
	text  string
	level int
}

type picture struct {
	img   domain.Image
	frame domain.Frame
}

type chart struct {
	rendered domain.RenderedChart
	frame    domain.Frame
}

type slide struct {
	style      layoutStyle
	title      string
	hasTitle   bool
	paragraphs []paragraph
	pictures   []picture
	charts     []chart
}

func (p *Presentation) AddSlide(layout domain.Layout) (ports.Slide, error) {
	s := &slide{style: styleOf(layout)}
	p.slides = append(p.slides, s)
	return s, nil
}

func (s *slide) SetTitle(text string) error {
	if !s.style.layout.HasTitle() {
		return domain.ErrNoPlaceholder
	}
	s.title = text
	s.hasTitle = true
	return nil
}

func (s *slide) AddParagraph(text string, level int) error {
	if !s.style.layout.HasBody() {
		return domain.ErrNoPlaceholder
	}
	s.paragraphs = append(s.paragraphs, paragraph{text: text, level: level})
	return nil
}

func (s *slide) AddPicture(img domain.Image, frame domain.Frame) error {
	if len(img.Data) == 0 {
		return fmt.Errorf("picture %s has no data", img.Path)
	}
	s.pictures = append(s.pictures, picture{img: img, frame: frame})
	return nil
}

func (s *slide) AddChart(rendered domain.RenderedChart, frame domain.Frame) error {
	if len(rendered.Data) == 0 {
		return fmt.Errorf("chart image is empty")
	}
	s.charts = append(s.charts, chart{rendered: rendered, frame: frame})
	return nil
}

// Save builds the GoPPT presentation and writes it as PPTX.
func (p *Presentation) Save(w io.Writer) error {
	doc := ppt.New()
	doc.GetDocumentProperties().Title = p.props.Title
	doc.GetDocumentProperties().Creator = p.props.Author

	for i, s := range p.slides {
		// A new presentation already holds one empty slide.
		target := doc.GetActiveSlide()
		if i > 0 {
			target = doc.CreateSlide()
		}
		s.draw(target)
	}

	writer, err := ppt.NewWriter(doc, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("create writer: %w", err)
	}
	pw, ok := writer.(*ppt.PPTXWriter)
	if !ok {
		return fmt.Errorf("unexpected writer type %T", writer)
	}

	var buf bytes.Buffer
	if err := pw.WriteTo(&buf); err != nil {
		return fmt.Errorf("write pptx: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write pptx: %w", err)
	}
	return nil
}

func (s *slide) draw(target *ppt.Slide) {
	if s.hasTitle {
		drawTitle(target, s.style, s.title)
	}
	if len(s.paragraphs) > 0 {
		drawBody(target, s.style, s.paragraphs)
	}
	for _, pic := range s.pictures {
		drawImage(target, pic.img.Data, pic.img.MIME, pic.frame)
	}
	for _, c := range s.charts {
		drawChart(target, c.rendered, c.frame)
	}
}
