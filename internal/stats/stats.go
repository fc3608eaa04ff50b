// Package stats computes summary statistics over small fixed-size samples.
// This is an internal package used by patch normalisation.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeanStdDev returns the mean and the population standard deviation
// (sum of squared deviations divided by n) of values.
//
// An empty input returns (NaN, NaN).
func MeanStdDev(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	mean, variance := stat.PopMeanVariance(values, nil)
	return mean, math.Sqrt(variance)
}

// Uint8s widens src into dst, growing dst if needed, and returns it.
func Uint8s(dst []float64, src []uint8) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}
