package imagematch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/imagematch/patch"
	"github.com/hupe1980/imagematch/testutil"
)

func TestMatcherScore(t *testing.T) {
	src := patch.GraySource{Image: testutil.NewRNG(8).NoiseImage(40, 40)}

	t.Run("trained model", func(t *testing.T) {
		res, err := NewTrainer().Train(context.Background(), trainingViews(t, 20))
		require.NoError(t, err)

		m := NewMatcher(res.Descriptor)
		assert.Equal(t, res.Descriptor, m.Model())

		score, err := m.Score(src, 20, 20)
		require.NoError(t, err)
		assert.Zero(t, score)
	})

	t.Run("first bin rare", func(t *testing.T) {
		m := NewMatcher(patch.Descriptor{^uint64(0)})

		score, err := m.Score(src, 20, 20)
		require.NoError(t, err)
		assert.Equal(t, patch.GridSize, score)

		ok, err := m.Match(src, 20, 20, patch.GridSize-1)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = m.Match(src, 20, 20, patch.GridSize)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("full model", func(t *testing.T) {
		full := patch.Descriptor{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
		score, err := NewMatcher(full).Score(src, 20, 20)
		require.NoError(t, err)
		assert.Equal(t, patch.GridSize, score, "a query sets one bin per location")
		assert.LessOrEqual(t, score, MaxScore)
	})
}

func TestMatcherSkips(t *testing.T) {
	m := NewMatcher(patch.Descriptor{})

	t.Run("out of bounds", func(t *testing.T) {
		src := patch.GraySource{Image: testutil.NewRNG(1).NoiseImage(20, 20)}
		_, err := m.Score(src, 6, 10)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.True(t, IsSkip(err))

		ok, err := m.Match(src, 13, 10, MaxScore)
		assert.False(t, ok)
		assert.True(t, IsSkip(err))
	})

	t.Run("constant patch", func(t *testing.T) {
		src := patch.GraySource{Image: testutil.ConstantImage(20, 20, 128)}
		_, err := m.Score(src, 10, 10)
		assert.ErrorIs(t, err, ErrDegeneratePatch)
		assert.ErrorIs(t, err, patch.ErrConstantPatch)
		assert.True(t, IsSkip(err))
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := m.Score(nil, 10, 10)
		assert.ErrorIs(t, err, ErrNilSource)
		assert.False(t, IsSkip(err))
	})
}

func TestMatcherMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	m := NewMatcher(patch.Descriptor{^uint64(0)}, WithMetricsCollector(metrics))
	src := patch.GraySource{Image: testutil.NewRNG(8).NoiseImage(40, 40)}

	for range 3 {
		_, err := m.Score(src, 20, 20)
		require.NoError(t, err)
	}
	_, err := m.Score(src, 0, 0)
	require.True(t, IsSkip(err))

	stats := metrics.GetStats()
	assert.Equal(t, int64(4), stats.ScoreCount)
	assert.Equal(t, int64(1), stats.ScoreSkipped)
	assert.Equal(t, int64(patch.GridSize), stats.ScoreAvg)
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, translateError(nil))

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))

	err := translateError(patch.ErrEmptyModel)
	assert.ErrorIs(t, err, ErrNoSamples)
	assert.ErrorIs(t, err, patch.ErrEmptyModel)
}

func TestViewOutcomeString(t *testing.T) {
	assert.Equal(t, "accepted", ViewAccepted.String())
	assert.Equal(t, "out_of_bounds", ViewOutOfBounds.String())
	assert.Equal(t, "degenerate", ViewDegenerate.String())
	assert.Equal(t, "unknown", ViewOutcome(42).String())
}
