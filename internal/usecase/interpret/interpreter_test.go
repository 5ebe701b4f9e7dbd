package interpret

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/slidey/internal/domain"
)

var testLayouts = []domain.Layout{
	{Index: 0, Name: "Title Slide", Title: &domain.Frame{}, Body: &domain.Frame{}},
	{Index: 1, Name: "Title and Content", Title: &domain.Frame{}, Body: &domain.Frame{}},
	{Index: 2, Name: "Blank"},
}

func e(key string, v *domain.Node) domain.Entry {
	return domain.Entry{Key: key, Value: v}
}

func s(v string) *domain.Node { return domain.Scalar(v) }

func n(v float64) *domain.Node { return domain.Number(v) }

func deckOf(slides ...[]domain.Entry) domain.Deck {
	d := domain.Deck{Path: "/decks/talk.yaml", Units: domain.UnitsInches}
	for i, cmds := range slides {
		d.Slides = append(d.Slides, domain.SlideSpec{Index: i, Commands: cmds})
	}
	return d
}

type fakeImages struct {
	img   domain.Image
	paths []string
}

func (f *fakeImages) LoadImage(path string) (domain.Image, error) {
	f.paths = append(f.paths, path)
	img := f.img
	img.Path = path
	return img, nil
}

type fakeCharts struct {
	specs []domain.ChartSpec
	sizes []domain.Size
	err   error
}

func (f *fakeCharts) Render(spec domain.ChartSpec, size domain.Size) (domain.RenderedChart, error) {
	f.specs = append(f.specs, spec)
	f.sizes = append(f.sizes, size)
	if f.err != nil {
		return domain.RenderedChart{}, f.err
	}
	return domain.RenderedChart{Data: []byte("png"), MIME: "image/png"}, nil
}

func TestRun_ParagraphLevelsFollowNesting(t *testing.T) {
	deck := deckOf([]domain.Entry{
		e("title", s("Agenda")),
		e("text", s("flat")),
		e("text", domain.Seq(
			s("a"),
			domain.Seq(s("b"), domain.Seq(s("c"))),
		)),
	})

	rec := NewRecorder()
	res, err := New(testLayouts).Run(context.Background(), deck, rec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []Call{
		{Op: "title", Text: "Agenda"},
		{Op: "text", Text: "flat", Level: 0},
		{Op: "text", Text: "a", Level: 0},
		{Op: "text", Text: "b", Level: 1},
		{Op: "text", Text: "c", Level: 2},
	}
	if diff := cmp.Diff(want, rec.Slides[0].Calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}

	if res.Slides[0].Paragraphs != 4 || res.Slides[0].Title != "Agenda" {
		t.Fatalf("unexpected report: %+v", res.Slides[0])
	}
	if res.Slides[0].Layout != "Title and Content" {
		t.Fatalf("expected default layout, got %q", res.Slides[0].Layout)
	}
}

func TestRun_ParagraphLevelIsClamped(t *testing.T) {
	v := s("deep")
	for i := 0; i < 12; i++ {
		v = domain.Seq(v)
	}

	rec := NewRecorder()
	if _, err := New(testLayouts).Run(context.Background(), deckOf([]domain.Entry{e("text", v)}), rec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := rec.Slides[0].Calls[0].Level
	if got != MaxLevel {
		t.Fatalf("expected level %d, got %d", MaxLevel, got)
	}
}

func TestRun_NamedArguments(t *testing.T) {
	deck := deckOf([]domain.Entry{
		e("title", domain.Map(e("text", s("Named")))),
	})

	rec := NewRecorder()
	if _, err := New(testLayouts).Run(context.Background(), deck, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rec.Slides[0].Calls[0].Text != "Named" {
		t.Fatalf("unexpected calls: %+v", rec.Slides[0].Calls)
	}
}

func TestRun_UnknownKeyIsSkippedWithWarning(t *testing.T) {
	deck := deckOf([]domain.Entry{
		e("title", s("Hi")),
		e("notes", s("speaker notes")),
	})

	rec := NewRecorder()
	res, err := New(testLayouts).Run(context.Background(), deck, rec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], `"notes"`) {
		t.Fatalf("expected one warning about notes, got %v", res.Warnings)
	}
	if len(rec.Slides[0].Calls) != 1 {
		t.Fatalf("expected only the title call, got %+v", rec.Slides[0].Calls)
	}
}

func TestRun_ArgumentErrors(t *testing.T) {
	cases := []struct {
		name    string
		entry   domain.Entry
		wantMsg string
	}{
		{
			name:    "unexpected argument",
			entry:   e("title", domain.Map(e("text", s("x")), e("size", n(12)))),
			wantMsg: `slides[0].title: unexpected argument "size"`,
		},
		{
			name:    "missing argument",
			entry:   e("img", domain.Map(e("path", s("a.png")), e("left", n(1)))),
			wantMsg: `slides[0].img: missing required argument "top"`,
		},
		{
			name:    "wrong type",
			entry:   e("img", domain.Map(e("path", s("a.png")), e("top", s("high")), e("left", n(1)))),
			wantMsg: "top: expected a number",
		},
		{
			name:    "error inside a list",
			entry:   e("text", domain.Seq(s("ok"), domain.Map(e("body", s("x"))))),
			wantMsg: `slides[0].text: [1]: unexpected argument "body"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := New(testLayouts, WithImageLoader(&fakeImages{}))
			_, err := in.Run(context.Background(), deckOf([]domain.Entry{tc.entry}), NewRecorder())
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidDeck) {
				t.Fatalf("expected invalid_deck kind, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected %q in error, got %v", tc.wantMsg, err)
			}
		})
	}
}

func TestRun_LayoutWithoutPlaceholder(t *testing.T) {
	deck := deckOf([]domain.Entry{e("title", s("Hi"))})
	blank := domain.LayoutByName("blank")
	deck.Slides[0].Layout = &blank

	_, err := New(testLayouts).Run(context.Background(), deck, NewRecorder())
	if !errors.Is(err, domain.ErrNoPlaceholder) {
		t.Fatalf("expected ErrNoPlaceholder, got %v", err)
	}
}

func TestRun_UnknownLayout(t *testing.T) {
	deck := deckOf([]domain.Entry{e("title", s("Hi"))})
	ref := domain.LayoutByIndex(42)
	deck.Slides[0].Layout = &ref

	_, err := New(testLayouts).Run(context.Background(), deck, NewRecorder())
	if !domain.IsKind(err, domain.KindInvalidDeck) {
		t.Fatalf("expected invalid_deck, got %v", err)
	}
	if !strings.Contains(err.Error(), "slides[0].layout") {
		t.Fatalf("expected slide index in error, got %v", err)
	}
}

func TestRun_ResolvesVariables(t *testing.T) {
	deck := deckOf(
		[]domain.Entry{e("title", s("{{event}} {{$slide}}/{{$slides}}"))},
		[]domain.Entry{e("text", s("{{$date}}"))},
	)
	deck.Vars = domain.Vars{"event": "GopherCon"}

	now := func() time.Time { return time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC) }
	in := New(testLayouts, WithVarResolver(domain.NewVarResolver(domain.WithNow(now))))

	rec := NewRecorder()
	if _, err := in.Run(context.Background(), deck, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := rec.Slides[0].Calls[0].Text; got != "GopherCon 1/2" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := rec.Slides[1].Calls[0].Text; got != "2024-05-17" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestRun_MissingVariable(t *testing.T) {
	deck := deckOf([]domain.Entry{e("title", s("{{nope}}"))})

	_, err := New(testLayouts).Run(context.Background(), deck, NewRecorder())
	if !domain.IsKind(err, domain.KindMissingVar) {
		t.Fatalf("expected missing_variable, got %v", err)
	}
	if !errors.Is(err, domain.ErrMissingVar) {
		t.Fatalf("expected ErrMissingVar in chain, got %v", err)
	}
}

func TestRun_ImageKeepsAspectRatio(t *testing.T) {
	images := &fakeImages{img: domain.Image{WidthPx: 200, HeightPx: 100}}
	deck := deckOf([]domain.Entry{
		e("img", domain.Map(
			e("path", s("pics/logo.png")),
			e("top", n(1)),
			e("left", n(2)),
			e("width", n(4)),
		)),
	})

	rec := NewRecorder()
	res, err := New(testLayouts, WithImageLoader(images)).Run(context.Background(), deck, rec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := Call{
		Op:   "img",
		Path: "/decks/pics/logo.png",
		Frame: domain.Frame{
			X:      2 * domain.EMUPerInch,
			Y:      1 * domain.EMUPerInch,
			Width:  4 * domain.EMUPerInch,
			Height: 2 * domain.EMUPerInch,
		},
	}
	if diff := cmp.Diff(want, rec.Slides[0].Calls[0]); diff != "" {
		t.Fatalf("img call mismatch (-want +got):\n%s", diff)
	}
	if res.Slides[0].Pictures != 1 {
		t.Fatalf("expected 1 picture, got %d", res.Slides[0].Pictures)
	}
}

func TestRun_ImageUsesDeckUnits(t *testing.T) {
	images := &fakeImages{img: domain.Image{WidthPx: 72, HeightPx: 72}}
	deck := deckOf([]domain.Entry{
		e("img", domain.Map(e("path", s("/abs/a.png")), e("top", n(1)), e("left", n(2)))),
	})
	deck.Units = domain.UnitsCentimeters

	rec := NewRecorder()
	if _, err := New(testLayouts, WithImageLoader(images)).Run(context.Background(), deck, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := rec.Slides[0].Calls[0]
	if got.Path != "/abs/a.png" {
		t.Fatalf("absolute path should be kept, got %q", got.Path)
	}
	if got.Frame.X != 2*domain.EMUPerCentimeter || got.Frame.Y != domain.EMUPerCentimeter {
		t.Fatalf("unexpected offset: %+v", got.Frame)
	}
	if got.Frame.Width != domain.EMUPerInch || got.Frame.Height != domain.EMUPerInch {
		t.Fatalf("expected native 1in size at 72 dpi, got %+v", got.Frame)
	}
}

func chartEntry(style string, data ...float64) domain.Entry {
	values := make([]*domain.Node, 0, len(data))
	for _, d := range data {
		values = append(values, n(d))
	}
	return e("chart", domain.Map(
		e("style", s(style)),
		e("categories", domain.Seq(s("Q1"), s("Q2"))),
		e("series", domain.Seq(domain.Map(
			e("title", s("Revenue")),
			e("data", domain.Seq(values...)),
		))),
	))
}

func TestRun_ChartUsesDefaultFrame(t *testing.T) {
	charts := &fakeCharts{}
	deck := deckOf([]domain.Entry{chartEntry("column_clustered", 1, 2.5)})

	rec := NewRecorder()
	res, err := New(testLayouts, WithChartRenderer(charts)).Run(context.Background(), deck, rec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantSpec := domain.ChartSpec{
		Style:      domain.ChartColumnClustered,
		Categories: []string{"Q1", "Q2"},
		Series:     []domain.ChartSeries{{Title: "Revenue", Values: []float64{1, 2.5}}},
		Legend:     domain.LegendRight,
	}
	if diff := cmp.Diff([]domain.ChartSpec{wantSpec}, charts.specs); diff != "" {
		t.Fatalf("chart data mismatch (-want +got):\n%s", diff)
	}

	wantFrame := domain.Frame{
		X:      1 * domain.EMUPerInch,
		Y:      2 * domain.EMUPerInch,
		Width:  8 * domain.EMUPerInch,
		Height: 5 * domain.EMUPerInch,
	}
	if diff := cmp.Diff(wantFrame, rec.Slides[0].Calls[0].Frame); diff != "" {
		t.Fatalf("chart frame mismatch (-want +got):\n%s", diff)
	}
	plot, _ := domain.SplitChartFrame(wantFrame, domain.LegendRight)
	if charts.sizes[0] != (domain.Size{Width: plot.Width, Height: plot.Height}) {
		t.Fatalf("expected the plot area to be rendered, got %+v", charts.sizes[0])
	}
	if res.Slides[0].Charts != 1 {
		t.Fatalf("expected 1 chart, got %d", res.Slides[0].Charts)
	}
}

func TestRun_ChartErrors(t *testing.T) {
	cases := []struct {
		name    string
		entry   domain.Entry
		wantMsg string
	}{
		{name: "unknown style", entry: chartEntry("RADAR", 1, 2), wantMsg: "supported: AREA"},
		{name: "short data", entry: chartEntry("LINE", 1), wantMsg: "has 1 values for 2 categories"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			charts := &fakeCharts{}
			_, err := New(testLayouts, WithChartRenderer(charts)).Run(context.Background(), deckOf([]domain.Entry{tc.entry}), NewRecorder())
			if err == nil || !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected %q in error, got %v", tc.wantMsg, err)
			}
			if len(charts.specs) != 0 {
				t.Fatalf("renderer should not be called")
			}
		})
	}
}

func TestRun_ChartRenderFailureIsRenderKind(t *testing.T) {
	charts := &fakeCharts{err: errors.New("boom")}
	_, err := New(testLayouts, WithChartRenderer(charts)).Run(context.Background(), deckOf([]domain.Entry{chartEntry("PIE", 1, 2)}), NewRecorder())
	if !domain.IsKind(err, domain.KindRender) {
		t.Fatalf("expected render kind, got %v", err)
	}
}

func TestRun_ChartWithoutRendererOnlyCounts(t *testing.T) {
	rec := NewRecorder()
	res, err := New(testLayouts).Run(context.Background(), deckOf([]domain.Entry{chartEntry("AREA", 1, 2)}), rec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.Slides[0].Calls) != 0 {
		t.Fatalf("expected no chart placed, got %+v", rec.Slides[0].Calls)
	}
	if res.Slides[0].Charts != 1 {
		t.Fatalf("expected chart counted, got %d", res.Slides[0].Charts)
	}
}

func TestRun_StopsWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := NewRecorder()
	_, err := New(testLayouts).Run(ctx, deckOf([]domain.Entry{e("title", s("Hi"))}), rec)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(rec.Slides) != 0 {
		t.Fatalf("expected no slides, got %d", len(rec.Slides))
	}
}
