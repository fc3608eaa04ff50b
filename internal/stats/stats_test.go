package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanStdDev(t *testing.T) {
	t.Run("population estimator", func(t *testing.T) {
		mean, sd := MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		assert.InDelta(t, 5.0, mean, 1e-12)
		assert.InDelta(t, 2.0, sd, 1e-12)
	})

	t.Run("constant sample has zero deviation", func(t *testing.T) {
		mean, sd := MeanStdDev([]float64{42, 42, 42})
		assert.InDelta(t, 42.0, mean, 1e-12)
		assert.Zero(t, sd)
	})

	t.Run("empty", func(t *testing.T) {
		mean, sd := MeanStdDev(nil)
		assert.True(t, math.IsNaN(mean))
		assert.True(t, math.IsNaN(sd))
	})
}

func TestUint8s(t *testing.T) {
	got := Uint8s(nil, []uint8{0, 1, 255})
	assert.Equal(t, []float64{0, 1, 255}, got)

	buf := make([]float64, 0, 8)
	got = Uint8s(buf, []uint8{7, 8})
	assert.Equal(t, []float64{7, 8}, got)
	assert.Equal(t, 8, cap(got), "reuses the provided buffer")
}
