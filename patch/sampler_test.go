package patch

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/imagematch/testutil"
)

// coordSource encodes each pixel's coordinates in its intensity and fails the
// test on any out-of-bounds access.
type coordSource struct {
	t             *testing.T
	width, height int
}

func (s coordSource) Size() (int, int) { return s.width, s.height }

func (s coordSource) Intensity(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		s.t.Fatalf("out of bounds access at (%d, %d)", x, y)
	}
	return uint8(x + s.width*y)
}

func TestSampleBoundary(t *testing.T) {
	src := coordSource{t: t, width: 20, height: 20}

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"left margin too small", 6, 10, false},
		{"left margin exact", 7, 10, true},
		{"right margin exact", 12, 10, true},
		{"right margin too small", 13, 10, false},
		{"top margin too small", 10, 6, false},
		{"top margin exact", 10, 7, true},
		{"bottom margin exact", 10, 12, true},
		{"bottom margin too small", 10, 13, false},
		{"origin", 0, 0, false},
		{"negative", -1, 10, false},
		{"far outside", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, ok := Sample(src, tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ok, InBounds(20, 20, tt.x, tt.y))
			if !ok {
				assert.Equal(t, Raw{}, raw)
			}
		})
	}
}

func TestSampleOrder(t *testing.T) {
	src := coordSource{t: t, width: 20, height: 20}

	raw, ok := Sample(src, 10, 10)
	require.True(t, ok)
	require.Len(t, raw, 64)

	for row := range GridSide {
		for col := range GridSide {
			x := 10 - 7 + 2*col
			y := 10 - 7 + 2*row
			assert.Equal(t, uint8(x+20*y), raw[row*GridSide+col], "row %d col %d", row, col)
		}
	}
}

func TestOffsets(t *testing.T) {
	assert.Equal(t, [GridSide]int{-7, -5, -3, -1, 1, 3, 5, 7}, Offsets())
}

func TestGraySourceHonoursOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 25, 25))
	img.SetGray(5+3, 5+3, color.Gray{Y: 11})
	img.SetGray(5+17, 5+17, color.Gray{Y: 22})

	src := NewSource(img)
	require.IsType(t, GraySource{}, src)

	w, h := src.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, h)

	raw, ok := Sample(src, 10, 10)
	require.True(t, ok)
	assert.Equal(t, uint8(11), raw[0])
	assert.Equal(t, uint8(22), raw[GridSize-1])
}

func TestImageSourceMatchesGray(t *testing.T) {
	gray := testutil.NewRNG(3).NoiseImage(24, 24)

	rgba := image.NewRGBA(gray.Rect)
	for y := range 24 {
		for x := range 24 {
			v := gray.GrayAt(x, y).Y
			rgba.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	src := NewSource(rgba)
	require.IsType(t, ImageSource{}, src)

	want, ok := Sample(GraySource{Image: gray}, 12, 12)
	require.True(t, ok)
	got, ok := Sample(src, 12, 12)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
