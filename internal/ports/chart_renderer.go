package ports

import "github.com/aalvaropc/slidey/internal/domain"

// ChartRenderer turns chart data into an image sized for the given frame.
type ChartRenderer interface {
	Render(spec domain.ChartSpec, size domain.Size) (domain.RenderedChart, error)
}
