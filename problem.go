package iohclustering

import (
	"fmt"
	"math"
	"time"

	"github.com/iohprofiler/iohclustering/codec"
	"github.com/iohprofiler/iohclustering/dataset"
	"github.com/iohprofiler/iohclustering/metric"
)

// MetaData describes a Problem. All fields are fixed at construction.
type MetaData struct {
	Name        string
	ID          int
	Instance    int
	Dimension   int // length of the decision vector, k * data dimension
	NumPoints   int
	NumClusters int
}

// State is a snapshot of the mutable evaluation state of a Problem.
type State struct {
	Evaluations int64
	Best        float64 // +Inf until the first evaluation
	BestX       []float64
}

// Problem is a clustering task exposed through the problem contract of
// black-box optimization harnesses: a decision vector of length k*d encodes
// k centroids, and Evaluate scores the clustering those centroids induce.
//
// A Problem is reusable indefinitely and assumes a single caller; run
// concurrent optimizers on separate instances constructed from the same
// data.
type Problem struct {
	meta        MetaData
	data        *dataset.Dataset
	k           int
	d           int
	lower       []float64
	upper       []float64
	eval        *metric.Composed
	retransform dataset.Retransform

	log   *Logger
	stats StatsCollector

	evaluations int64
	best        float64
	bestX       []float64
	evalLogger  EvalLogger
}

// New creates a clustering problem over the given points with k clusters.
// The dataset is copied and min-max normalized to [0, 1] unless
// WithoutNormalization is given.
func New(data [][]float64, k int, opts ...Option) (*Problem, error) {
	ds, err := dataset.FromMatrix(data)
	if err != nil {
		return nil, translateError(err)
	}
	return NewFromDataset(ds, k, opts...)
}

// NewFromDataset creates a clustering problem over an existing dataset.
func NewFromDataset(ds *dataset.Dataset, k int, opts ...Option) (*Problem, error) {
	o := applyOptions(opts)

	if k < 1 {
		return nil, &ConfigError{Param: "k", Reason: fmt.Sprintf("must be at least 1, got %d", k), cause: ErrInvalidK}
	}
	if k > ds.Len() {
		return nil, &ConfigError{Param: "k", Reason: fmt.Sprintf("must not exceed the %d dataset points, got %d", ds.Len(), k)}
	}

	var retransform dataset.Retransform
	if o.normalize {
		ds, retransform = ds.Normalize()
	} else {
		retransform = ds.Identity()
	}

	lower, upper := codec.Bounds(ds, k)

	name := o.name
	if name == "" {
		name = fmt.Sprintf("Cluster_custom_k%d", k)
	}

	p := &Problem{
		meta: MetaData{
			Name:        name,
			ID:          o.id,
			Instance:    o.instance,
			Dimension:   k * ds.Dim(),
			NumPoints:   ds.Len(),
			NumClusters: k,
		},
		data:        ds,
		k:           k,
		d:           ds.Dim(),
		lower:       lower,
		upper:       upper,
		eval:        metric.General(o.dist, o.errMetric),
		retransform: retransform,
		log:         o.logger.WithProblem(name).WithK(k).WithDimension(k * ds.Dim()),
		stats:       o.stats,
		best:        math.Inf(1),
	}
	return p, nil
}

// Evaluate scores a decision vector. The vector must have length k*d; it is
// decoded into k centroids, every dataset point is assigned to its nearest
// centroid, and the bound error metric scores the labeling. Lower is better.
//
// A successful call increments the evaluation counter, updates the
// best-so-far state on strict improvement, and notifies any attached
// logger. The score for a given vector never changes between calls.
func (p *Problem) Evaluate(x []float64) (float64, error) {
	start := time.Now()
	y, err := p.evaluate(x)
	p.stats.RecordEvaluation(time.Since(start), err)
	if err != nil {
		p.log.LogEvaluate(p.evaluations, 0, err)
		return 0, err
	}

	p.evaluations++
	if y < p.best {
		p.best = y
		p.bestX = append(p.bestX[:0], x...)
	}
	if p.evalLogger != nil {
		p.evalLogger.Log(p.evaluations, x, y)
	}
	p.log.LogEvaluate(p.evaluations, y, nil)

	return y, nil
}

func (p *Problem) evaluate(x []float64) (float64, error) {
	centroids, err := codec.Decode(x, p.k, p.d)
	if err != nil {
		return 0, translateError(err)
	}

	y, labeling, err := p.eval.Evaluate(p.data, centroids)
	if err != nil {
		return 0, translateError(err)
	}

	if empty := labeling.Degenerate(); len(empty) > 0 {
		p.stats.RecordDegenerateClusters(len(empty))
		p.log.LogDegenerateClusters(p.evaluations+1, empty)
	}

	return y, nil
}

// MetaData returns the fixed description of the problem.
func (p *Problem) MetaData() MetaData {
	return p.meta
}

// Bounds returns copies of the lower and upper bounds of the decision
// vector, each of length k*d.
func (p *Problem) Bounds() (lower, upper []float64) {
	return append([]float64(nil), p.lower...), append([]float64(nil), p.upper...)
}

// State returns a snapshot of the evaluation counter and best-so-far
// tracking. Before the first evaluation Best is +Inf and BestX is nil.
func (p *Problem) State() State {
	var bestX []float64
	if p.bestX != nil {
		bestX = append([]float64(nil), p.bestX...)
	}
	return State{
		Evaluations: p.evaluations,
		Best:        p.best,
		BestX:       bestX,
	}
}

// AttachLogger binds an evaluation observer. A previous binding is replaced;
// the problem never closes a logger, detached or otherwise.
func (p *Problem) AttachLogger(l EvalLogger) {
	p.evalLogger = l
}

// DetachLogger removes the current evaluation observer, if any.
func (p *Problem) DetachLogger() {
	p.evalLogger = nil
}

// Reset zeroes the evaluation counter and best-so-far tracking so
// independent optimization runs on the same instance do not leak state.
// The dataset, bounds and logger binding are untouched.
func (p *Problem) Reset() {
	p.log.LogReset(p.evaluations)
	p.evaluations = 0
	p.best = math.Inf(1)
	p.bestX = nil
}

// Retransform maps a decision vector back to a k x d matrix of centroids in
// the original feature space of the dataset, undoing normalization. It is a
// pure function for interpreting results; evaluation never uses it.
func (p *Problem) Retransform(x []float64) ([][]float64, error) {
	if len(x) != p.k*p.d {
		return nil, &ShapeError{What: "decision vector", Expected: p.k * p.d, Actual: len(x)}
	}
	return p.retransform(x)
}
