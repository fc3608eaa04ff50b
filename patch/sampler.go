package patch

const (
	// GridSide is the number of samples along each axis of a patch.
	GridSide = 8

	// GridSize is the number of samples in a patch.
	GridSize = GridSide * GridSide

	// Radius is the distance from the centre to the outermost sample.
	Radius = 7
)

// offsets are ±1, ±3, ±5, ±7: every other pixel of a 15×15 window,
// skipping the centre row and column.
var offsets = [GridSide]int{-7, -5, -3, -1, 1, 3, 5, 7}

// Raw is a sampled patch of unnormalised intensities in row-major (dy, dx) order.
type Raw [GridSize]uint8

// Offsets returns the sample offsets used along each axis.
func Offsets() [GridSide]int {
	return offsets
}

// InBounds reports whether the full sampling window around (x, y) lies
// inside a width × height image.
func InBounds(width, height, x, y int) bool {
	return x >= Radius && y >= Radius && x+Radius < width && y+Radius < height
}

// Sample extracts the 8×8 patch around (x, y).
//
// It returns false when the window would leave the image. There is no
// clamping and no partial patch.
func Sample(src PixelSource, x, y int) (Raw, bool) {
	var raw Raw

	width, height := src.Size()
	if !InBounds(width, height, x, y) {
		return raw, false
	}

	i := 0
	for _, dy := range offsets {
		for _, dx := range offsets {
			raw[i] = src.Intensity(x+dx, y+dy)
			i++
		}
	}

	return raw, true
}
