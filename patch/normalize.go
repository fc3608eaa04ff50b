package patch

import (
	"math"

	"github.com/hupe1980/imagematch/internal/conv"
	"github.com/hupe1980/imagematch/internal/stats"
)

// Normalized is a patch rescaled to zero mean and unit variance, stored back
// in the 8-bit intensity domain used by Bin.
type Normalized [GridSize]uint8

// Normalize maps each value v of raw to (v - mean) / stddev, using the
// population standard deviation over the 64 values.
//
// The result is truncated toward zero and saturated into [0, 255]. Negative
// values become 0, so most normalised intensities land in bin 0. This loses
// precision; it is kept because it decides which bin a value falls into and
// therefore which descriptor bits are set.
//
// A constant patch returns ErrConstantPatch.
func Normalize(raw Raw) (Normalized, error) {
	var n Normalized

	var buf [GridSize]float64
	values := stats.Uint8s(buf[:0], raw[:])

	mean, stddev := stats.MeanStdDev(values)
	if stddev == 0 || math.IsNaN(stddev) {
		return n, ErrConstantPatch
	}

	for i, v := range values {
		n[i] = conv.TruncateToUint8((v - mean) / stddev)
	}

	return n, nil
}
