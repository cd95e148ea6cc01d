// Package metric scores clusterings. An Evaluator turns a dataset, a
// centroid set and a labeling into a single scalar; General composes a
// distance function with an Evaluator into the callable a clustering
// problem minimizes.
package metric

import (
	"github.com/iohprofiler/iohclustering/assign"
	"github.com/iohprofiler/iohclustering/dataset"
	"github.com/iohprofiler/iohclustering/distance"
)

// Evaluator scores a labeled clustering. Lower is better.
type Evaluator interface {
	Score(ds *dataset.Dataset, centroids [][]float64, labeling *assign.Labeling) (float64, error)
}

// Func adapts an ordinary function to the Evaluator interface.
type Func func(ds *dataset.Dataset, centroids [][]float64, labeling *assign.Labeling) (float64, error)

// Score implements Evaluator.
func (f Func) Score(ds *dataset.Dataset, centroids [][]float64, labeling *assign.Labeling) (float64, error) {
	return f(ds, centroids, labeling)
}

// MeanSquaredError returns the default evaluator: the squared Euclidean
// distance of each point to its assigned centroid, averaged over all points.
// Empty clusters have no assigned points and therefore contribute zero.
func MeanSquaredError() Evaluator {
	return Func(func(ds *dataset.Dataset, centroids [][]float64, labeling *assign.Labeling) (float64, error) {
		var sum float64
		for i := 0; i < ds.Len(); i++ {
			sum += distance.SquaredEuclidean(ds.Point(i), centroids[labeling.Label(i)])
		}
		return sum / float64(ds.Len()), nil
	})
}

// Composed binds a distance function and an error evaluator into a single
// clustering score: assignment runs under the distance function and the
// resulting labeling is handed to the evaluator.
type Composed struct {
	dist distance.Function
	err  Evaluator
}

// General composes a distance function and an error evaluator.
// A nil dist defaults to squared Euclidean; a nil errFn defaults to
// MeanSquaredError. Scoring delegates entirely to errFn.
func General(dist distance.Function, errFn Evaluator) *Composed {
	if dist == nil {
		dist = distance.Broadcast(distance.SquaredEuclidean)
	}
	if errFn == nil {
		errFn = MeanSquaredError()
	}
	return &Composed{dist: dist, err: errFn}
}

// Default returns the mean-squared-Euclidean composition.
func Default() *Composed {
	return General(nil, nil)
}

// Evaluate assigns every dataset point to its nearest centroid and scores
// the labeling. The labeling is returned alongside the score so callers can
// inspect cluster membership (e.g. detect empty clusters).
func (c *Composed) Evaluate(ds *dataset.Dataset, centroids [][]float64) (float64, *assign.Labeling, error) {
	labeling, err := assign.Assign(ds, centroids, c.dist)
	if err != nil {
		return 0, nil, err
	}
	score, err := c.err.Score(ds, centroids, labeling)
	if err != nil {
		return 0, nil, err
	}
	return score, labeling, nil
}
