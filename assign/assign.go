// Package assign labels dataset points with their nearest centroid.
package assign

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/iohprofiler/iohclustering/dataset"
	"github.com/iohprofiler/iohclustering/distance"
)

// ErrDistanceShape indicates a distance function that returned the wrong
// number of per-centroid distances.
type ErrDistanceShape struct {
	Expected int
	Actual   int
}

func (e *ErrDistanceShape) Error() string {
	return fmt.Sprintf("distance function returned %d distances, expected %d", e.Actual, e.Expected)
}

// Labeling assigns every dataset point to exactly one cluster index in
// [0, k). A cluster may be empty.
type Labeling struct {
	labels  []int
	members []*roaring.Bitmap
}

// K returns the number of clusters.
func (l *Labeling) K() int { return len(l.members) }

// Len returns the number of labeled points.
func (l *Labeling) Len() int { return len(l.labels) }

// Label returns the cluster index of point i.
func (l *Labeling) Label(i int) int { return l.labels[i] }

// Labels returns a copy of the per-point cluster indices.
func (l *Labeling) Labels() []int {
	return append([]int(nil), l.labels...)
}

// Members returns the set of point indices assigned to cluster c.
// The returned bitmap must not be mutated.
func (l *Labeling) Members(c int) *roaring.Bitmap { return l.members[c] }

// Size returns the number of points assigned to cluster c.
func (l *Labeling) Size(c int) int {
	return int(l.members[c].GetCardinality())
}

// Degenerate returns the indices of clusters with no assigned points.
func (l *Labeling) Degenerate() []int {
	var empty []int
	for c, m := range l.members {
		if m.IsEmpty() {
			empty = append(empty, c)
		}
	}
	return empty
}

// Assign labels every point of the dataset with the index of its nearest
// centroid under fn. Ties go to the lowest centroid index, so the result is
// deterministic. A distance function that returns the wrong number of
// distances yields an *ErrDistanceShape.
func Assign(ds *dataset.Dataset, centroids [][]float64, fn distance.Function) (*Labeling, error) {
	k := len(centroids)
	labels := make([]int, ds.Len())
	members := make([]*roaring.Bitmap, k)
	for c := range members {
		members[c] = roaring.New()
	}

	for i := 0; i < ds.Len(); i++ {
		dists, err := fn.Distances(ds.Point(i), centroids)
		if err != nil {
			return nil, err
		}
		if len(dists) != k {
			return nil, &ErrDistanceShape{Expected: k, Actual: len(dists)}
		}

		best := 0
		for c := 1; c < k; c++ {
			if dists[c] < dists[best] {
				best = c
			}
		}
		labels[i] = best
		members[best].Add(uint32(i))
	}

	return &Labeling{labels: labels, members: members}, nil
}
