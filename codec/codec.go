// Package codec maps between the flat decision vectors an optimizer
// proposes and the centroid sets a clustering is scored on, and derives the
// search-space bounds for a dataset.
package codec

import (
	"fmt"

	"github.com/iohprofiler/iohclustering/dataset"
)

// ErrVectorLength indicates a decision vector whose length does not match
// the expected k*d layout.
type ErrVectorLength struct {
	Expected int
	Actual   int
}

func (e *ErrVectorLength) Error() string {
	return fmt.Sprintf("decision vector length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Decode reshapes a flat decision vector of length k*d into k centroids of
// dimension d. Centroid i is the vector slice [i*d, (i+1)*d), row-major;
// this layout is the search-space topology optimizers explore and is stable.
//
// The returned centroids are views into x and share its backing array.
func Decode(x []float64, k, d int) ([][]float64, error) {
	if len(x) != k*d {
		return nil, &ErrVectorLength{Expected: k * d, Actual: len(x)}
	}
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = x[i*d : (i+1)*d : (i+1)*d]
	}
	return centroids, nil
}

// Bounds derives the admissible decision-vector range for k centroids over
// the given dataset: the per-column minimum and maximum, tiled k times so
// every centroid's coordinates range over the full data extent. Both slices
// have length k*Dim.
func Bounds(ds *dataset.Dataset, k int) (lower, upper []float64) {
	min, max := ds.ColumnBounds()
	d := ds.Dim()
	lower = make([]float64, k*d)
	upper = make([]float64, k*d)
	for i := 0; i < k; i++ {
		copy(lower[i*d:], min)
		copy(upper[i*d:], max)
	}
	return lower, upper
}
