package testutil

import (
	"image"
	"image/color"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Words returns five pseudo-random words, the shape of a patch descriptor.
func (r *RNG) Words() [5]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var w [5]uint64
	for i := range w {
		w[i] = r.rand.Uint64()
	}
	return w
}

// Intensities returns 64 pseudo-random intensities, the shape of a patch.
func (r *RNG) Intensities() [64]uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var p [64]uint8
	for i := range p {
		p[i] = uint8(r.rand.Intn(256))
	}
	return p
}

// NoiseImage returns a width × height image of uniform noise.
func (r *RNG) NoiseImage(width, height int) *image.Gray {
	r.mu.Lock()
	defer r.mu.Unlock()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = uint8(r.rand.Intn(256))
	}
	return img
}

// Perturb returns a copy of img with every pixel mapped to
// contrast*v + brightness + noise, where noise is uniform in
// [-amplitude, amplitude]. Results are clamped to [0, 255].
func (r *RNG) Perturb(img *image.Gray, contrast, brightness float64, amplitude int) *image.Gray {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := image.NewGray(img.Rect)
	for i, v := range img.Pix {
		f := contrast*float64(v) + brightness
		if amplitude > 0 {
			f += float64(r.rand.Intn(2*amplitude+1) - amplitude)
		}
		out.Pix[i] = clamp(f)
	}
	return out
}

// ConstantImage returns a width × height image where every pixel is v.
func ConstantImage(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// GradientImage returns a width × height image with intensity x+y, wrapped at 256.
func GradientImage(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, grayOf(x+y))
		}
	}
	return img
}

func clamp(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

func grayOf(v int) color.Gray {
	return color.Gray{Y: uint8(v % 256)}
}
