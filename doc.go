// Package iohclustering exposes clustering as a continuous black-box
// optimization problem: a bounded real-valued decision vector encodes k
// centroid positions, and evaluating the vector scores the clustering it
// induces on a fixed dataset.
//
// # Quick Start
//
//	data := [][]float64{{1, 2}, {2, 3}, {3, 4}, {8, 9}, {9, 10}}
//	problem, _ := iohclustering.New(data, 2)
//
//	lower, upper := problem.Bounds()
//	x := optimize(problem.Evaluate, lower, upper) // any optimizer
//
//	centers, _ := problem.Retransform(x) // back to original feature space
//
// # Benchmark datasets
//
//	store := blobstore.NewLocalStore("./benchmark_datasets")
//	problem, _ := benchmark.Problem(ctx, store, "iris", 3)
//
// # Custom metrics
//
//	problem, _ := iohclustering.New(data, 2,
//	    iohclustering.WithDistanceFunc(distance.Manhattan),
//	    iohclustering.WithErrorMetric(myEvaluator),
//	)
//
// # Key properties
//
//   - Decision vector layout: centroid i occupies slice [i*d, (i+1)*d)
//   - Datasets are min-max normalized to [0, 1] by default; Retransform
//     maps solutions back to the original scale
//   - Evaluation is pure with respect to the dataset; only the evaluation
//     counter, best-so-far state and the attached logger observe calls
//   - Empty clusters never fail an evaluation; they contribute zero cost
//     and are observable through logging and stats
package iohclustering
