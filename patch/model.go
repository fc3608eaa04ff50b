package patch

import (
	"math"

	"github.com/hupe1980/imagematch/internal/bitops"
)

const (
	// NumBins is the number of intensity ranges per grid location.
	NumBins = 5

	// BinWidth is the intensity span of each bin. 255/52 floors to 4,
	// so every uint8 maps to a bin in [0, NumBins).
	BinWidth = 52

	// DefaultRareThreshold is the fraction of samples below which a bin
	// counts as a statistically rare outcome.
	DefaultRareThreshold = 0.05
)

// Bin returns the intensity bin of v.
func Bin(v uint8) int {
	return int(v) / BinWidth
}

// Histogram counts the samples seen at one grid location per intensity bin.
// Counters only grow; they saturate at math.MaxUint32.
type Histogram [NumBins]uint32

// Total returns the number of samples in the histogram.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h {
		total += uint64(c)
	}
	return total
}

func (h *Histogram) add(bin int, n uint32) {
	if c := h[bin]; c > math.MaxUint32-n {
		h[bin] = math.MaxUint32
	} else {
		h[bin] = c + n
	}
}

// Model accumulates per-location intensity histograms over many training
// patches. The zero value is an empty model ready for use.
//
// A Model is not safe for concurrent use. See SyncModel.
type Model struct {
	hists [GridSize]Histogram
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddSample adds one normalised patch to every location's histogram.
func (m *Model) AddSample(sample Normalized) {
	for h, v := range sample {
		m.hists[h].add(Bin(v), 1)
	}
}

// Merge adds the counters of other into m. Training one model per worker and
// merging afterwards yields the same counters as training a single model.
func (m *Model) Merge(other *Model) {
	for h := range m.hists {
		for i, c := range other.hists[h] {
			m.hists[h].add(i, c)
		}
	}
}

// Reset clears all counters.
func (m *Model) Reset() {
	m.hists = [GridSize]Histogram{}
}

// Samples returns the number of patches added to the model.
func (m *Model) Samples() uint64 {
	return m.hists[0].Total()
}

// Histogram returns a copy of the histogram at grid location h.
func (m *Model) Histogram(h int) Histogram {
	return m.hists[h]
}

// Quantise reduces the model to a Descriptor using DefaultRareThreshold.
func (m *Model) Quantise() (Descriptor, error) {
	return m.QuantiseThreshold(DefaultRareThreshold)
}

// QuantiseThreshold sets bit h of descriptor word i when the fraction of
// samples at location h that fell into bin i is below threshold.
//
// It returns ErrEmptyModel if any location has no samples rather than
// dividing by zero.
func (m *Model) QuantiseThreshold(threshold float64) (Descriptor, error) {
	var d Descriptor

	if !(threshold > 0 && threshold <= 1) {
		return d, ErrInvalidThreshold
	}

	for h := range m.hists {
		hist := &m.hists[h]
		total := hist.Total()
		if total == 0 {
			return Descriptor{}, ErrEmptyModel
		}
		for i, c := range hist {
			if float64(c)/float64(total) < threshold {
				d[i] = bitops.SetBit(d[i], uint(h))
			}
		}
	}

	return d, nil
}
