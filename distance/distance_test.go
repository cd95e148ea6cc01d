package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"Identical", []float64{1.5, -2}, []float64{1.5, -2}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredEuclidean(tt.a, tt.b), 1e-12)
		})
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2}, []float64{4, 6}, 7},
		{"Negative", []float64{-1, -2}, []float64{1, 2}, 6},
		{"Identical", []float64{3, 3}, []float64{3, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Manhattan(tt.a, tt.b), 1e-12)
		})
	}
}

func TestChebyshev(t *testing.T) {
	assert.InDelta(t, 4.0, Chebyshev([]float64{1, 2}, []float64{4, 6}), 1e-12)
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Parallel", []float64{1, 0}, []float64{2, 0}, 0},
		{"Orthogonal", []float64{1, 0}, []float64{0, 1}, 1},
		{"Opposite", []float64{1, 0}, []float64{-1, 0}, 2},
		{"ZeroNorm", []float64{0, 0}, []float64{1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-12)
		})
	}
}

func TestBroadcast(t *testing.T) {
	fn := Broadcast(SquaredEuclidean)

	dists, err := fn.Distances([]float64{0, 0}, [][]float64{{1, 0}, {0, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 25}, dists)
}

func TestBroadcastNoCentroids(t *testing.T) {
	dists, err := Broadcast(SquaredEuclidean).Distances([]float64{1}, nil)
	require.NoError(t, err)
	assert.Empty(t, dists)
}

func TestProvider(t *testing.T) {
	for _, m := range []Metric{MetricSquaredEuclidean, MetricEuclidean, MetricManhattan, MetricChebyshev, MetricCosine} {
		t.Run(m.String(), func(t *testing.T) {
			fn, err := Provider(m)
			require.NoError(t, err)
			require.NotNil(t, fn)
		})
	}
}

func TestProviderUnknown(t *testing.T) {
	_, err := Provider(Metric(99))
	assert.Error(t, err)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
	assert.Equal(t, "Unknown(99)", Metric(99).String())
}
