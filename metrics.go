package imagematch

import (
	"sync/atomic"
	"time"
)

// ViewOutcome classifies what happened to a single training view.
type ViewOutcome uint8

const (
	// ViewAccepted means the view was sampled, normalised and added to the model.
	ViewAccepted ViewOutcome = iota
	// ViewOutOfBounds means the sampling window left the image.
	ViewOutOfBounds
	// ViewDegenerate means the sampled patch was constant.
	ViewDegenerate
)

// String returns the string representation of a ViewOutcome.
func (o ViewOutcome) String() string {
	switch o {
	case ViewAccepted:
		return "accepted"
	case ViewOutOfBounds:
		return "out_of_bounds"
	case ViewDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// RecordView is called concurrently from training workers.
type MetricsCollector interface {
	// RecordTrain is called after each training run.
	// views is the number of views supplied, accepted the number that
	// contributed a sample, err is nil if successful.
	RecordTrain(views, accepted int, duration time.Duration, err error)

	// RecordView is called once per training view.
	RecordView(outcome ViewOutcome)

	// RecordScore is called after each scored query point.
	// score is only meaningful when err is nil.
	RecordScore(score int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTrain(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordView(ViewOutcome)                     {}
func (NoopMetricsCollector) RecordScore(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TrainCount       atomic.Int64
	TrainErrors      atomic.Int64
	TrainTotalNanos  atomic.Int64
	ViewsAccepted    atomic.Int64
	ViewsOutOfBounds atomic.Int64
	ViewsDegenerate  atomic.Int64
	ScoreCount       atomic.Int64
	ScoreSkipped     atomic.Int64
	ScoreTotal       atomic.Int64
	ScoreTotalNanos  atomic.Int64
}

// RecordTrain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrain(views, accepted int, duration time.Duration, err error) {
	b.TrainCount.Add(1)
	b.TrainTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TrainErrors.Add(1)
	}
}

// RecordView implements MetricsCollector.
func (b *BasicMetricsCollector) RecordView(outcome ViewOutcome) {
	switch outcome {
	case ViewAccepted:
		b.ViewsAccepted.Add(1)
	case ViewOutOfBounds:
		b.ViewsOutOfBounds.Add(1)
	case ViewDegenerate:
		b.ViewsDegenerate.Add(1)
	}
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(score int, duration time.Duration, err error) {
	b.ScoreCount.Add(1)
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScoreSkipped.Add(1)
		return
	}
	b.ScoreTotal.Add(int64(score))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TrainCount:       b.TrainCount.Load(),
		TrainErrors:      b.TrainErrors.Load(),
		TrainAvgNanos:    avg(b.TrainTotalNanos.Load(), b.TrainCount.Load()),
		ViewsAccepted:    b.ViewsAccepted.Load(),
		ViewsOutOfBounds: b.ViewsOutOfBounds.Load(),
		ViewsDegenerate:  b.ViewsDegenerate.Load(),
		ScoreCount:       b.ScoreCount.Load(),
		ScoreSkipped:     b.ScoreSkipped.Load(),
		ScoreAvg:         avg(b.ScoreTotal.Load(), b.ScoreCount.Load()-b.ScoreSkipped.Load()),
		ScoreAvgNanos:    avg(b.ScoreTotalNanos.Load(), b.ScoreCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count <= 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TrainCount       int64
	TrainErrors      int64
	TrainAvgNanos    int64
	ViewsAccepted    int64
	ViewsOutOfBounds int64
	ViewsDegenerate  int64
	ScoreCount       int64
	ScoreSkipped     int64
	ScoreAvg         int64
	ScoreAvgNanos    int64
}
