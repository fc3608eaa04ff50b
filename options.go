package imagematch

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/imagematch/patch"
)

type options struct {
	workers          int
	rareThreshold    float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Trainer and Matcher behavior.
type Option func(*options)

// WithWorkers configures how many goroutines sample training views.
// Each worker trains its own model; the models are merged at the end.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithRareThreshold configures the fraction of samples below which a bin is
// considered rare when quantising. Must be in (0, 1]; Train reports
// ErrInvalidThreshold otherwise.
//
// Default: patch.DefaultRareThreshold (0.05).
func WithRareThreshold(threshold float64) Option {
	return func(o *options) {
		o.rareThreshold = threshold
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &imagematch.BasicMetricsCollector{}
//	trainer := imagematch.NewTrainer(imagematch.WithMetricsCollector(metrics))
//	// ... train ...
//	stats := metrics.GetStats()
//	fmt.Printf("Accepted: %d, Out of bounds: %d\n", stats.ViewsAccepted, stats.ViewsOutOfBounds)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := imagematch.NewJSONLogger(slog.LevelInfo)
//	trainer := imagematch.NewTrainer(imagematch.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          runtime.GOMAXPROCS(0),
		rareThreshold:    patch.DefaultRareThreshold,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
