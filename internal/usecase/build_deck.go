package usecase

import (
	"context"
	"io"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
	"github.com/aalvaropc/slidey/internal/usecase/interpret"
)

type BuildDeck struct {
	decks   ports.DeckLoader
	factory ports.PresentationFactory
	charts  ports.ChartRenderer
	images  ports.ImageLoader
	opts    options
}

func NewBuildDeck(dl ports.DeckLoader, pf ports.PresentationFactory, cr ports.ChartRenderer, il ports.ImageLoader, opts ...Option) *BuildDeck {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &BuildDeck{
		decks:   dl,
		factory: pf,
		charts:  cr,
		images:  il,
		opts:    o,
	}
}

// Execute loads the deck at deckPath, builds the presentation and writes it
// to w. Nothing is written when interpretation fails.
func (uc *BuildDeck) Execute(ctx context.Context, deckPath string, w io.Writer) (domain.BuildReport, error) {
	report := domain.BuildReport{
		DeckPath:  deckPath,
		StartedAt: uc.opts.now(),
	}

	deck, err := uc.decks.LoadDeck(deckPath)
	if err != nil {
		return report, err
	}

	pres, err := uc.factory.NewPresentation(deck.Properties)
	if err != nil {
		return report, &domain.OpError{Op: "build.new", Kind: domain.KindRender, Path: deckPath, Err: err}
	}

	in := interpret.New(uc.factory.Layouts(),
		interpret.WithChartRenderer(uc.charts),
		interpret.WithImageLoader(uc.images),
		interpret.WithConfig(uc.opts.cfg),
		interpret.WithVarResolver(uc.opts.resolver),
		interpret.WithLogger(uc.opts.log),
	)

	res, err := in.Run(ctx, deck, pres)
	report.Slides = res.Slides
	report.Warnings = res.Warnings
	if err != nil {
		report.EndedAt = uc.opts.now()
		return report, err
	}

	if err := pres.Save(w); err != nil {
		report.EndedAt = uc.opts.now()
		return report, &domain.OpError{Op: "build.save", Kind: domain.KindRender, Path: deckPath, Err: err}
	}

	report.EndedAt = uc.opts.now()
	uc.opts.log.Info("build.completed", "deck", deckPath, "slides", len(report.Slides), "warnings", len(report.Warnings))
	return report, nil
}
