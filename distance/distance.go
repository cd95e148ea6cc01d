// Package distance provides the distance functions used to assign dataset
// points to centroids.
package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func is a pairwise distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
type Func func(a, b []float64) float64

// SquaredEuclidean calculates the squared L2 distance between two vectors.
func SquaredEuclidean(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan calculates the L1 distance between two vectors.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev calculates the L-infinity distance between two vectors.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Cosine calculates the cosine distance (1 - cosine similarity) between two
// vectors. Zero-norm inputs yield a distance of 1.
func Cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - floats.Dot(a, b)/(na*nb)
}

// Function computes the distance from one point to every centroid.
// The result has one entry per centroid, in centroid order.
type Function interface {
	Distances(point []float64, centroids [][]float64) ([]float64, error)
}

// FunctionFunc adapts an ordinary function to the Function interface.
type FunctionFunc func(point []float64, centroids [][]float64) ([]float64, error)

// Distances implements Function.
func (f FunctionFunc) Distances(point []float64, centroids [][]float64) ([]float64, error) {
	return f(point, centroids)
}

// Broadcast lifts a pairwise distance to a Function by applying it to each
// centroid in turn.
func Broadcast(f Func) Function {
	return FunctionFunc(func(point []float64, centroids [][]float64) ([]float64, error) {
		out := make([]float64, len(centroids))
		for i, c := range centroids {
			out[i] = f(point, c)
		}
		return out, nil
	})
}

// Metric identifies a built-in distance function.
type Metric int

const (
	MetricSquaredEuclidean Metric = iota
	MetricEuclidean
	MetricManhattan
	MetricChebyshev
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricEuclidean:
		return "Euclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Provider returns the Function for the given metric.
func Provider(m Metric) (Function, error) {
	switch m {
	case MetricSquaredEuclidean:
		return Broadcast(SquaredEuclidean), nil
	case MetricEuclidean:
		return Broadcast(Euclidean), nil
	case MetricManhattan:
		return Broadcast(Manhattan), nil
	case MetricChebyshev:
		return Broadcast(Chebyshev), nil
	case MetricCosine:
		return Broadcast(Cosine), nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
