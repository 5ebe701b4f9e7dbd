// Package interpret walks a parsed deck and dispatches each slide key to a
// shape-building command on the presentation.
//
// Values are processed recursively: a sequence processes each item one
// outline level deeper, a mapping calls the command with named arguments and
// a scalar calls it with the value as its first positional argument.
package interpret

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
)

// MaxLevel is the deepest outline level a paragraph can take.
const MaxLevel = 8

// Interpreter turns deck slides into presentation calls.
type Interpreter struct {
	layouts  []domain.Layout
	charts   ports.ChartRenderer
	images   ports.ImageLoader
	resolver *domain.VarResolver
	cfg      domain.Config
	log      *slog.Logger
	commands map[string]command
}

type Option func(*Interpreter)

// WithChartRenderer sets the renderer used by the chart command. Without one,
// chart data is validated but nothing is placed on the slide.
func WithChartRenderer(r ports.ChartRenderer) Option {
	return func(in *Interpreter) { in.charts = r }
}

func WithImageLoader(l ports.ImageLoader) Option {
	return func(in *Interpreter) { in.images = l }
}

func WithConfig(cfg domain.Config) Option {
	return func(in *Interpreter) { in.cfg = cfg }
}

func WithVarResolver(vr *domain.VarResolver) Option {
	return func(in *Interpreter) {
		if vr != nil {
			in.resolver = vr
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.log = l
		}
	}
}

func New(layouts []domain.Layout, opts ...Option) *Interpreter {
	in := &Interpreter{
		layouts:  layouts,
		resolver: domain.NewVarResolver(),
		cfg:      domain.DefaultConfig(),
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		commands: builtinCommands(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Commands lists the registered command names.
func (in *Interpreter) Commands() []string {
	out := make([]string, 0, len(in.commands))
	for name := range in.commands {
		out = append(out, name)
	}
	return out
}

// Result is what the interpreter placed, slide by slide.
type Result struct {
	Slides   []domain.SlideReport
	Warnings []string
}

// slideState is the per-slide context commands write through.
type slideState struct {
	index   int
	layout  domain.Layout
	slide   ports.Slide
	units   domain.Units
	baseDir string
	vars    *domain.SlideResolver
	level   int
	report  *domain.SlideReport
}

// paragraphLevel maps the recursion depth to an outline level.
func (st *slideState) paragraphLevel() int {
	switch {
	case st.level < 0:
		return 0
	case st.level > MaxLevel:
		return MaxLevel
	default:
		return st.level
	}
}

// Run interprets every slide of deck into pres. On error the result holds
// the slides completed so far.
func (in *Interpreter) Run(ctx context.Context, deck domain.Deck, pres ports.Presentation) (Result, error) {
	res := Result{Slides: make([]domain.SlideReport, 0, len(deck.Slides))}

	units := deck.Units
	if units == "" {
		units = in.cfg.Defaults.Units
	}

	for _, spec := range deck.Slides {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		report, warnings, err := in.runSlide(deck, spec, units, pres)
		res.Warnings = append(res.Warnings, warnings...)
		if err != nil {
			return res, err
		}
		res.Slides = append(res.Slides, report)
	}

	return res, nil
}

func (in *Interpreter) runSlide(deck domain.Deck, spec domain.SlideSpec, units domain.Units, pres ports.Presentation) (domain.SlideReport, []string, error) {
	ref := domain.LayoutByIndex(in.cfg.Defaults.Layout)
	if spec.Layout != nil {
		ref = *spec.Layout
	}

	layout, err := domain.ResolveLayout(in.layouts, ref)
	if err != nil {
		return domain.SlideReport{}, nil, in.slideError(deck, spec, "layout", domain.KindInvalidDeck, err)
	}

	slide, err := pres.AddSlide(layout)
	if err != nil {
		return domain.SlideReport{}, nil, in.slideError(deck, spec, "layout", domain.KindRender, err)
	}
	in.log.Debug("interpret.slide.added", "slide", spec.Index, "layout", layout.Name)

	report := domain.SlideReport{Index: spec.Index, Layout: layout.Name}
	st := &slideState{
		index:   spec.Index,
		layout:  layout,
		slide:   slide,
		units:   units,
		baseDir: filepath.Dir(deck.Path),
		vars:    in.resolver.ForSlide(deck.Vars, spec.Index, len(deck.Slides)),
		level:   -1,
		report:  &report,
	}

	var warnings []string
	for _, e := range spec.Commands {
		cmd, ok := in.commands[e.Key]
		if !ok {
			msg := fmt.Sprintf("slides[%d]: unknown key %q ignored", spec.Index, e.Key)
			in.log.Warn("interpret.key.skipped", "slide", spec.Index, "key", e.Key)
			warnings = append(warnings, msg)
			continue
		}

		if err := in.process(st, cmd, e.Value); err != nil {
			kind := domain.KindInvalidDeck
			var oe *domain.OpError
			if errors.As(err, &oe) {
				kind = oe.Kind
			}
			return report, warnings, in.slideError(deck, spec, e.Key, kind, errAt(e.Value, err))
		}
	}

	return report, warnings, nil
}

// process applies cmd to v, recursing into sequences one level deeper.
func (in *Interpreter) process(st *slideState, cmd command, v *domain.Node) error {
	if v != nil && v.Kind == domain.SequenceNode {
		st.level++
		defer func() { st.level-- }()

		for i, item := range v.Items {
			if err := in.process(st, cmd, item); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	}

	a, err := bind(cmd, v, st.vars)
	if err != nil {
		return err
	}
	return cmd.run(in, st, a)
}

func (in *Interpreter) slideError(deck domain.Deck, spec domain.SlideSpec, key string, kind domain.ErrorKind, err error) error {
	return &domain.OpError{
		Op:   "interpret." + key,
		Kind: kind,
		Path: deck.Path,
		Err:  fmt.Errorf("slides[%d].%s: %w", spec.Index, key, err),
	}
}

func errAt(n *domain.Node, err error) error {
	if n == nil || n.Line == 0 {
		return err
	}
	return fmt.Errorf("line %d: %w", n.Line, err)
}
