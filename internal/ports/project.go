package ports

import "github.com/aalvaropc/slidey/internal/domain"

type ProjectInitializer interface {
	Init(root string, force bool) error
}

// ConfigLocator finds and loads the project configuration that applies to a deck.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
	LoadConfig(root string) (domain.Config, error)
}
