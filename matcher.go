package imagematch

import (
	"time"

	"github.com/hupe1980/imagematch/patch"
)

// MaxScore is the largest possible discrepancy: every bin of every location.
const MaxScore = patch.NumBins * patch.GridSize

// Matcher scores query points against one trained descriptor.
// A Matcher is safe for concurrent use.
type Matcher struct {
	model patch.Descriptor
	opts  options
}

// NewMatcher creates a Matcher for a trained descriptor.
func NewMatcher(model patch.Descriptor, optFns ...Option) *Matcher {
	return &Matcher{
		model: model,
		opts:  applyOptions(optFns),
	}
}

// Model returns the descriptor the matcher scores against.
func (m *Matcher) Model() patch.Descriptor {
	return m.model
}

// Score returns the discrepancy between the patch around (x, y) in src and the
// trained model, in [0, MaxScore]. Lower is more similar.
//
// Points that cannot be sampled return ErrOutOfBounds or ErrDegeneratePatch;
// use IsSkip to tell them apart from failures.
func (m *Matcher) Score(src patch.PixelSource, x, y int) (int, error) {
	start := time.Now()

	score, err := m.score(src, x, y)
	err = translateError(err)

	m.opts.metricsCollector.RecordScore(score, time.Since(start), err)
	m.opts.logger.LogScore(x, y, score, err)

	return score, err
}

func (m *Matcher) score(src patch.PixelSource, x, y int) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}

	raw, ok := patch.Sample(src, x, y)
	if !ok {
		return 0, ErrOutOfBounds
	}

	n, err := patch.Normalize(raw)
	if err != nil {
		return 0, err
	}

	return patch.Discrepancy(patch.EncodePatch(n), m.model), nil
}

// Match reports whether the point at (x, y) scores at most maxScore.
func (m *Matcher) Match(src patch.PixelSource, x, y, maxScore int) (bool, error) {
	score, err := m.Score(src, x, y)
	if err != nil {
		return false, err
	}
	return score <= maxScore, nil
}
