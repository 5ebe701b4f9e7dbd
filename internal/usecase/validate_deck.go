package usecase

import (
	"context"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
	"github.com/aalvaropc/slidey/internal/usecase/interpret"
)

type ValidateDeck struct {
	decks   ports.DeckLoader
	layouts []domain.Layout
	images  ports.ImageLoader
	opts    options
}

func NewValidateDeck(dl ports.DeckLoader, layouts []domain.Layout, il ports.ImageLoader, opts ...Option) *ValidateDeck {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ValidateDeck{
		decks:   dl,
		layouts: layouts,
		images:  il,
		opts:    o,
	}
}

// Execute runs the whole deck against a recording canvas. Layouts, arguments,
// chart data, variables and image files are checked; charts are not rendered
// and nothing is written.
func (uc *ValidateDeck) Execute(ctx context.Context, deckPath string) (domain.BuildReport, error) {
	report := domain.BuildReport{
		DeckPath:  deckPath,
		StartedAt: uc.opts.now(),
	}

	deck, err := uc.decks.LoadDeck(deckPath)
	if err != nil {
		return report, err
	}

	in := interpret.New(uc.layouts,
		interpret.WithImageLoader(uc.images),
		interpret.WithConfig(uc.opts.cfg),
		interpret.WithVarResolver(uc.opts.resolver),
		interpret.WithLogger(uc.opts.log),
	)

	res, err := in.Run(ctx, deck, interpret.NewRecorder())
	report.Slides = res.Slides
	report.Warnings = res.Warnings
	report.EndedAt = uc.opts.now()
	return report, err
}
