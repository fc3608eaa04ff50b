package patch

import (
	"image"
	"image/color"
)

// PixelSource is a grayscale image addressable by integer coordinates
// relative to its top-left corner.
//
// Intensity is only called for coordinates inside [0, width) × [0, height).
type PixelSource interface {
	Size() (width, height int)
	Intensity(x, y int) uint8
}

// GraySource adapts an *image.Gray. Coordinates are offset by Rect.Min.
type GraySource struct {
	Image *image.Gray
}

// Size implements PixelSource.
func (g GraySource) Size() (int, int) {
	b := g.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Intensity implements PixelSource.
func (g GraySource) Intensity(x, y int) uint8 {
	b := g.Image.Bounds()
	return g.Image.Pix[g.Image.PixOffset(b.Min.X+x, b.Min.Y+y)]
}

// ImageSource adapts any image.Image by converting pixels to luminance
// with color.GrayModel on access.
type ImageSource struct {
	Image image.Image
}

// Size implements PixelSource.
func (s ImageSource) Size() (int, int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Intensity implements PixelSource.
func (s ImageSource) Intensity(x, y int) uint8 {
	b := s.Image.Bounds()
	c := color.GrayModel.Convert(s.Image.At(b.Min.X+x, b.Min.Y+y))
	return c.(color.Gray).Y
}

// NewSource returns the cheapest PixelSource for img.
func NewSource(img image.Image) PixelSource {
	if g, ok := img.(*image.Gray); ok {
		return GraySource{Image: g}
	}
	return ImageSource{Image: img}
}
