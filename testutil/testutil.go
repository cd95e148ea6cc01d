// Package testutil provides deterministic random data generation for tests.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed pseudo-random float64.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// Uniform generates n points of dimension dim with coordinates in [0, 1).
func Uniform(rng *RNG, n, dim int) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		row := make([]float64, dim)
		for j := range row {
			row[j] = rng.Float64()
		}
		points[i] = row
	}
	return points
}

// Blobs generates pointsPer Gaussian-distributed points around each center
// with the given standard deviation. Points appear grouped by center, in
// center order.
func Blobs(rng *RNG, centers [][]float64, pointsPer int, stddev float64) [][]float64 {
	var points [][]float64
	for _, c := range centers {
		for i := 0; i < pointsPer; i++ {
			row := make([]float64, len(c))
			for j := range row {
				row[j] = c[j] + rng.NormFloat64()*stddev
			}
			points = append(points, row)
		}
	}
	return points
}
