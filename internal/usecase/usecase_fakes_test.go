package usecase

import (
	"errors"
	"io"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
	"github.com/aalvaropc/slidey/internal/usecase/interpret"
)

var fakeLayouts = []domain.Layout{
	{Index: 0, Name: "Title Slide", Title: &domain.Frame{}, Body: &domain.Frame{}},
	{Index: 1, Name: "Title and Content", Title: &domain.Frame{}, Body: &domain.Frame{}},
	{Index: 2, Name: "Blank"},
}

type fakeDeckLoader struct {
	deck domain.Deck
	err  error
}

func (f fakeDeckLoader) LoadDeck(path string) (domain.Deck, error) {
	if f.err != nil {
		return domain.Deck{}, f.err
	}
	d := f.deck
	d.Path = path
	return d, nil
}

// savingPresentation records calls and writes a marker on Save.
type savingPresentation struct {
	*interpret.Recorder
	saveErr error
}

func (p *savingPresentation) Save(w io.Writer) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	_, err := io.WriteString(w, "PPTX")
	return err
}

type fakeFactory struct {
	last    *savingPresentation
	props   domain.Properties
	saveErr error
}

func (f *fakeFactory) Layouts() []domain.Layout { return fakeLayouts }

func (f *fakeFactory) NewPresentation(props domain.Properties) (ports.Presentation, error) {
	f.props = props
	f.last = &savingPresentation{Recorder: interpret.NewRecorder(), saveErr: f.saveErr}
	return f.last, nil
}

type fakeCharts struct{ calls int }

func (f *fakeCharts) Render(domain.ChartSpec, domain.Size) (domain.RenderedChart, error) {
	f.calls++
	return domain.RenderedChart{Data: []byte("png"), MIME: "image/png"}, nil
}

type fakeImages struct{ err error }

func (f fakeImages) LoadImage(path string) (domain.Image, error) {
	if f.err != nil {
		return domain.Image{}, f.err
	}
	return domain.Image{Path: path, Data: []byte("img"), MIME: "image/png", WidthPx: 72, HeightPx: 72}, nil
}

var errMissingImage = &domain.OpError{Op: "imagefile.load", Kind: domain.KindNotFound, Err: errors.New("no such file")}

func entry(k string, v *domain.Node) domain.Entry { return domain.Entry{Key: k, Value: v} }

func sampleDeck() domain.Deck {
	return domain.Deck{
		Units:      domain.UnitsInches,
		Properties: domain.Properties{Title: "Talk", Author: "Ana"},
		Slides: []domain.SlideSpec{
			{Index: 0, Commands: []domain.Entry{
				entry("title", domain.Scalar("Hello")),
				entry("text", domain.Seq(domain.Scalar("a"), domain.Scalar("b"))),
				entry("footer", domain.Scalar("ignored")),
			}},
			{Index: 1, Commands: []domain.Entry{
				entry("img", domain.Map(
					entry("path", domain.Scalar("logo.png")),
					entry("top", domain.Number(1)),
					entry("left", domain.Number(1)),
				)),
				entry("chart", domain.Map(
					entry("style", domain.Scalar("PIE")),
					entry("categories", domain.Seq(domain.Scalar("x"), domain.Scalar("y"))),
					entry("series", domain.Seq(domain.Map(
						entry("title", domain.Scalar("share")),
						entry("data", domain.Seq(domain.Number(1), domain.Number(3))),
					))),
				)),
			}},
		},
	}
}
