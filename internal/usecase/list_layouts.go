package usecase

import (
	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
)

type ListLayouts struct {
	factory ports.PresentationFactory
}

func NewListLayouts(pf ports.PresentationFactory) *ListLayouts {
	return &ListLayouts{factory: pf}
}

// Execute returns the library's layouts in index order.
func (uc *ListLayouts) Execute() []domain.Layout {
	return uc.factory.Layouts()
}
