package domain

// Image is a decoded picture ready to be placed on a slide.
type Image struct {
	Path     string
	Data     []byte
	MIME     string
	WidthPx  int
	HeightPx int
}

// PictureSize resolves the placed size of an image.
// With both sizes given they are used as-is; with one, the other keeps the
// aspect ratio; with none, the native pixel size is converted at dpi.
func PictureSize(img Image, width, height *Length, dpi float64) Size {
	if dpi <= 0 {
		dpi = 72
	}
	nativeW := Length(float64(img.WidthPx) / dpi * float64(EMUPerInch))
	nativeH := Length(float64(img.HeightPx) / dpi * float64(EMUPerInch))

	switch {
	case width != nil && height != nil:
		return Size{Width: *width, Height: *height}
	case width != nil:
		if img.WidthPx == 0 {
			return Size{Width: *width, Height: nativeH}
		}
		return Size{Width: *width, Height: Length(float64(*width) * float64(img.HeightPx) / float64(img.WidthPx))}
	case height != nil:
		if img.HeightPx == 0 {
			return Size{Width: nativeW, Height: *height}
		}
		return Size{Width: Length(float64(*height) * float64(img.WidthPx) / float64(img.HeightPx)), Height: *height}
	default:
		return Size{Width: nativeW, Height: nativeH}
	}
}
