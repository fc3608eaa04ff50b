package imagematch

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/imagematch/internal/conv"
	"github.com/hupe1980/imagematch/patch"
)

// cancelCheckInterval is how many views a worker processes between
// context checks.
const cancelCheckInterval = 64

// View is one training observation of a point: the point's location in one
// (typically warped) copy of the reference image.
type View struct {
	Source patch.PixelSource
	X, Y   int
}

// ViewsOf returns one View per source, all at (x, y).
func ViewsOf(sources []patch.PixelSource, x, y int) []View {
	views := make([]View, len(sources))
	for i, src := range sources {
		views[i] = View{Source: src, X: x, Y: y}
	}
	return views
}

// TrainResult is the outcome of a training run.
type TrainResult struct {
	// Model holds the merged histograms of all accepted views.
	Model *patch.Model

	// Descriptor is Model quantised with the configured rare-bin threshold.
	Descriptor patch.Descriptor

	// Accepted is the number of views that contributed a sample.
	Accepted int

	// OutOfBounds holds the indices of views whose window left the image.
	OutOfBounds *roaring.Bitmap

	// Degenerate holds the indices of views with a constant patch.
	Degenerate *roaring.Bitmap
}

// Rejected returns the number of views that contributed no sample.
func (r *TrainResult) Rejected() uint64 {
	return r.OutOfBounds.GetCardinality() + r.Degenerate.GetCardinality()
}

// Trainer builds a patch model for one point from many views.
//
// Views are spread over worker goroutines. Each worker accumulates into its
// own patch.Model and the models are merged once all workers are done, so no
// model is shared during training. A Trainer is safe for concurrent use.
type Trainer struct {
	opts options
}

// NewTrainer creates a Trainer.
func NewTrainer(optFns ...Option) *Trainer {
	return &Trainer{opts: applyOptions(optFns)}
}

// Train samples, normalises and accumulates every view, then quantises the
// merged model.
//
// Views rejected at the border or as constant patches are recorded in the
// result, not treated as errors. If no view is usable, Train returns the
// partial result together with ErrNoSamples.
func (t *Trainer) Train(ctx context.Context, views []View) (*TrainResult, error) {
	start := time.Now()

	res, err := t.train(ctx, views)
	err = translateError(err)

	accepted := 0
	if res != nil {
		accepted = res.Accepted
	}
	t.opts.metricsCollector.RecordTrain(len(views), accepted, time.Since(start), err)
	t.opts.logger.LogTrain(ctx, len(views), accepted, err)

	return res, err
}

// shard is the private state of one training worker.
type shard struct {
	model       patch.Model
	accepted    int
	outOfBounds *roaring.Bitmap
	degenerate  *roaring.Bitmap
}

func (t *Trainer) train(ctx context.Context, views []View) (*TrainResult, error) {
	if len(views) == 0 {
		return nil, ErrNoViews
	}

	workers := min(max(t.opts.workers, 1), len(views))
	shards := make([]shard, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for w := range shards {
		s := &shards[w]
		s.outOfBounds = roaring.New()
		s.degenerate = roaring.New()

		g.Go(func() error {
			n := 0
			for i := w; i < len(views); i += workers {
				if n%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				n++

				if err := t.observe(gctx, s, i, views[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &TrainResult{
		Model:       patch.NewModel(),
		OutOfBounds: roaring.New(),
		Degenerate:  roaring.New(),
	}
	for i := range shards {
		res.Model.Merge(&shards[i].model)
		res.Accepted += shards[i].accepted
		res.OutOfBounds.Or(shards[i].outOfBounds)
		res.Degenerate.Or(shards[i].degenerate)
	}

	if res.Accepted == 0 {
		return res, ErrNoSamples
	}

	d, err := res.Model.QuantiseThreshold(t.opts.rareThreshold)
	if err != nil {
		return res, err
	}
	res.Descriptor = d

	return res, nil
}

// observe adds view i to the worker's shard or records why it was rejected.
func (t *Trainer) observe(ctx context.Context, s *shard, i int, v View) error {
	if v.Source == nil {
		return &ViewError{Index: i, cause: ErrNilSource}
	}

	idx, err := conv.IntToUint32(i)
	if err != nil {
		return &ViewError{Index: i, cause: err}
	}

	raw, ok := patch.Sample(v.Source, v.X, v.Y)
	if !ok {
		s.outOfBounds.Add(idx)
		t.reject(ctx, i, ViewOutOfBounds)
		return nil
	}

	n, err := patch.Normalize(raw)
	if err != nil {
		s.degenerate.Add(idx)
		t.reject(ctx, i, ViewDegenerate)
		return nil
	}

	s.model.AddSample(n)
	s.accepted++
	t.opts.metricsCollector.RecordView(ViewAccepted)

	return nil
}

func (t *Trainer) reject(ctx context.Context, i int, outcome ViewOutcome) {
	t.opts.metricsCollector.RecordView(outcome)
	t.opts.logger.LogRejectedView(ctx, i, outcome)
}
