package iohclustering_test

import (
	"fmt"

	"github.com/iohprofiler/iohclustering"
	"github.com/iohprofiler/iohclustering/distance"
)

func ExampleNew() {
	data := [][]float64{{1, 2}, {2, 3}, {3, 4}, {8, 9}, {9, 10}}

	problem, err := iohclustering.New(data, 2, iohclustering.WithoutNormalization())
	if err != nil {
		panic(err)
	}

	y, err := problem.Evaluate([]float64{2, 3, 8.5, 9.5})
	if err != nil {
		panic(err)
	}

	fmt.Printf("dimension: %d\n", problem.MetaData().Dimension)
	fmt.Printf("score: %.1f\n", y)
	// Output:
	// dimension: 4
	// score: 1.0
}

func ExampleWithDistanceFunc() {
	data := [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}

	problem, err := iohclustering.New(data, 2,
		iohclustering.WithoutNormalization(),
		iohclustering.WithDistanceFunc(distance.Manhattan),
	)
	if err != nil {
		panic(err)
	}

	y, err := problem.Evaluate([]float64{0, 0.5, 10, 10.5})
	if err != nil {
		panic(err)
	}

	fmt.Printf("score: %.2f\n", y)
	// Output:
	// score: 0.25
}
