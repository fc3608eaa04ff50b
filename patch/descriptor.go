package patch

import "github.com/hupe1980/imagematch/internal/bitops"

// Descriptor is a quantised patch model. Bit h of word i refers to grid
// location h and intensity bin i.
//
// Descriptors are only comparable when built with the same grid and binning.
type Descriptor [NumBins]uint64

// Bits returns the number of set bits across all words.
func (d Descriptor) Bits() int {
	return bitops.PopcountWords(d[:])
}

// Has reports whether the bit for grid location h in bin i is set.
func (d Descriptor) Has(bin, h int) bool {
	if bin < 0 || bin >= NumBins || h < 0 {
		return false
	}
	return bitops.HasBit(d[bin], uint(h))
}

// Discrepancy counts, over all bins, the grid locations set in both patch and
// model. With a query from EncodePatch this is the number of locations where
// the query falls in a bin the model considers rare; higher means less similar.
//
// The result is in [0, 320] and symmetric in its arguments.
func Discrepancy(patch, model Descriptor) int {
	return bitops.AndPopcount(patch[:], model[:])
}

// EncodePatch encodes a query patch for matching: bit h is set in the word of
// the bin that sample[h] falls into.
func EncodePatch(sample Normalized) Descriptor {
	var d Descriptor
	for h, v := range sample {
		b := Bin(v)
		d[b] = bitops.SetBit(d[b], uint(h))
	}
	return d
}

// QuantisePatch quantises a single patch as a one-sample model. Every bin
// except the observed one is rare at each location.
func QuantisePatch(sample Normalized, threshold float64) (Descriptor, error) {
	var m Model
	m.AddSample(sample)
	return m.QuantiseThreshold(threshold)
}
