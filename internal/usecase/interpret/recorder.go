package interpret

import (
	"io"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
)

// Call is one recorded slide operation.
type Call struct {
	Op    string
	Text  string
	Level int
	Path  string
	Frame domain.Frame
}

// RecordedSlide is a slide captured by a Recorder.
type RecordedSlide struct {
	Layout string
	Calls  []Call
}

// Recorder is a presentation that only remembers what was asked of it.
// It backs dry runs and interpreter tests.
type Recorder struct {
	Slides []*RecordedSlide
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) AddSlide(layout domain.Layout) (ports.Slide, error) {
	s := &RecordedSlide{Layout: layout.Name}
	r.Slides = append(r.Slides, s)
	return &recordedSlide{s: s}, nil
}

// Save writes nothing.
func (r *Recorder) Save(io.Writer) error { return nil }

type recordedSlide struct {
	s *RecordedSlide
}

func (rs *recordedSlide) SetTitle(text string) error {
	rs.s.Calls = append(rs.s.Calls, Call{Op: "title", Text: text})
	return nil
}

func (rs *recordedSlide) AddParagraph(text string, level int) error {
	rs.s.Calls = append(rs.s.Calls, Call{Op: "text", Text: text, Level: level})
	return nil
}

func (rs *recordedSlide) AddPicture(img domain.Image, frame domain.Frame) error {
	rs.s.Calls = append(rs.s.Calls, Call{Op: "img", Path: img.Path, Frame: frame})
	return nil
}

func (rs *recordedSlide) AddChart(chart domain.RenderedChart, frame domain.Frame) error {
	rs.s.Calls = append(rs.s.Calls, Call{Op: "chart", Text: chart.MIME, Frame: frame})
	return nil
}
