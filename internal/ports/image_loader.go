package ports

import "github.com/aalvaropc/slidey/internal/domain"

// ImageLoader reads and decodes picture files.
type ImageLoader interface {
	LoadImage(path string) (domain.Image, error)
}
