// Package imagefile reads picture files and their pixel dimensions.
package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
)

var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ImageLoader = (*Loader)(nil)

func (l *Loader) LoadImage(path string) (domain.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
			err = fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return domain.Image{}, &domain.OpError{
			Op:   "imagefile.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return domain.Image{}, &domain.OpError{
			Op:   "imagefile.decode",
			Kind: domain.KindInvalidDeck,
			Path: path,
			Err:  fmt.Errorf("unsupported or corrupt image: %w", err),
		}
	}

	return domain.Image{
		Path:     path,
		Data:     b,
		MIME:     mimeTypes[format],
		WidthPx:  cfg.Width,
		HeightPx: cfg.Height,
	}, nil
}
