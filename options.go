package iohclustering

import (
	"log/slog"

	"github.com/iohprofiler/iohclustering/distance"
	"github.com/iohprofiler/iohclustering/metric"
)

type options struct {
	name      string
	id        int
	instance  int
	dist      distance.Function
	errMetric metric.Evaluator
	logger    *Logger
	stats     StatsCollector
	normalize bool
}

// Option configures Problem construction.
type Option func(*options)

// WithName sets the problem name reported in metadata.
// The default is derived from the dataset ("Cluster_custom_k<k>").
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithID sets the benchmark problem ID reported in metadata.
// Custom datasets default to ID 0.
func WithID(id int) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithInstance sets the problem instance number. Useful for generating
// different problem instances with the same structure. Defaults to 1.
func WithInstance(instance int) Option {
	return func(o *options) {
		o.instance = instance
	}
}

// WithDistance sets the distance function used to assign points to
// centroids. The default is squared Euclidean.
func WithDistance(fn distance.Function) Option {
	return func(o *options) {
		if fn != nil {
			o.dist = fn
		}
	}
}

// WithDistanceFunc sets a pairwise distance function used to assign points
// to centroids. Convenience wrapper for WithDistance(distance.Broadcast(fn)).
func WithDistanceFunc(fn distance.Func) Option {
	return func(o *options) {
		if fn != nil {
			o.dist = distance.Broadcast(fn)
		}
	}
}

// WithErrorMetric sets the error metric that scores a labeled clustering.
// The default is mean squared Euclidean distance to the assigned centroid.
func WithErrorMetric(e metric.Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.errMetric = e
		}
	}
}

// WithoutNormalization keeps the dataset in its original coordinates
// instead of min-max scaling every column to [0, 1]. Search-space bounds
// then follow the raw per-column extent of the data.
func WithoutNormalization() Option {
	return func(o *options) {
		o.normalize = false
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
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

// WithStatsCollector configures a metrics collector for monitoring
// evaluations. Pass nil to disable metrics collection.
func WithStatsCollector(sc StatsCollector) Option {
	return func(o *options) {
		if sc == nil {
			sc = NoopStatsCollector{}
		}
		o.stats = sc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		instance:  1,
		logger:    NoopLogger(),
		stats:     NoopStatsCollector{},
		normalize: true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
