// Package dataset holds the immutable point matrices that clustering
// problems are scored against, plus loading and normalization helpers.
package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrEmpty is returned when a dataset has no points or no columns.
var ErrEmpty = errors.New("dataset is empty")

// ErrRagged indicates a row whose length differs from the first row.
type ErrRagged struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRagged) Error() string {
	return fmt.Sprintf("ragged dataset: row %d has %d columns, expected %d", e.Row, e.Actual, e.Expected)
}

// Dataset is an immutable, ordered collection of n points of dimension dim.
// Points are stored row-major in a flat slice.
type Dataset struct {
	data []float64
	n    int
	dim  int
}

// FromMatrix builds a Dataset from a rectangular matrix of points.
// The rows are copied; later mutation of the input does not affect the
// dataset.
func FromMatrix(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	dim := len(rows[0])
	data := make([]float64, 0, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, &ErrRagged{Row: i, Expected: dim, Actual: len(row)}
		}
		data = append(data, row...)
	}
	return &Dataset{data: data, n: len(rows), dim: dim}, nil
}

// Len returns the number of points.
func (d *Dataset) Len() int { return d.n }

// Dim returns the dimensionality of each point.
func (d *Dataset) Dim() int { return d.dim }

// Point returns the i-th point as a view into the dataset.
// The returned slice must not be mutated.
func (d *Dataset) Point(i int) []float64 {
	return d.data[i*d.dim : (i+1)*d.dim : (i+1)*d.dim]
}

// Matrix returns a copy of the dataset as an n x dim matrix.
func (d *Dataset) Matrix() [][]float64 {
	rows := make([][]float64, d.n)
	for i := range rows {
		rows[i] = append([]float64(nil), d.Point(i)...)
	}
	return rows
}

// ColumnBounds returns the per-column minimum and maximum of the dataset.
// Both slices have length Dim.
func (d *Dataset) ColumnBounds() (min, max []float64) {
	min = append([]float64(nil), d.Point(0)...)
	max = append([]float64(nil), d.Point(0)...)
	for i := 1; i < d.n; i++ {
		p := d.Point(i)
		for j, v := range p {
			if v < min[j] {
				min[j] = v
			}
			if v > max[j] {
				max[j] = v
			}
		}
	}
	return min, max
}

// Retransform maps a flat vector of centroids in the working space of a
// dataset back to a k x dim matrix in the original feature space. The vector
// length must be a multiple of the dataset dimensionality.
type Retransform func(x []float64) ([][]float64, error)

// Normalize min-max scales every column to [0, 1] and returns the scaled
// dataset together with the Retransform that undoes the scaling.
// Zero-range columns map to 0.
func (d *Dataset) Normalize() (*Dataset, Retransform) {
	min, max := d.ColumnBounds()

	span := make([]float64, d.dim)
	floats.SubTo(span, max, min)

	// Zero-range columns divide by 1 so every value maps to 0; the true
	// span is kept for the retransform, which then restores the constant.
	divisor := append([]float64(nil), span...)
	for j, s := range divisor {
		if s == 0 {
			divisor[j] = 1
		}
	}

	scaled := &Dataset{data: make([]float64, len(d.data)), n: d.n, dim: d.dim}
	for i := 0; i < d.n; i++ {
		row := scaled.data[i*d.dim : (i+1)*d.dim]
		floats.SubTo(row, d.Point(i), min)
		floats.DivTo(row, row, divisor)
	}

	retransform := func(x []float64) ([][]float64, error) {
		if len(x) == 0 || len(x)%d.dim != 0 {
			return nil, fmt.Errorf("retransform: vector length %d is not a multiple of dimension %d", len(x), d.dim)
		}
		k := len(x) / d.dim
		out := make([][]float64, k)
		for i := 0; i < k; i++ {
			row := make([]float64, d.dim)
			floats.MulTo(row, x[i*d.dim:(i+1)*d.dim], span)
			floats.Add(row, min)
			out[i] = row
		}
		return out, nil
	}

	return scaled, retransform
}

// Identity returns the Retransform for a dataset that was not normalized:
// a pure reshape into k x dim rows.
func (d *Dataset) Identity() Retransform {
	return func(x []float64) ([][]float64, error) {
		if len(x) == 0 || len(x)%d.dim != 0 {
			return nil, fmt.Errorf("retransform: vector length %d is not a multiple of dimension %d", len(x), d.dim)
		}
		k := len(x) / d.dim
		out := make([][]float64, k)
		for i := 0; i < k; i++ {
			out[i] = append([]float64(nil), x[i*d.dim:(i+1)*d.dim]...)
		}
		return out, nil
	}
}
