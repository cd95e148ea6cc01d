// Package benchmark provides the fixed catalog of baseline clustering
// datasets and constructs ready-to-optimize problems from it.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/iohprofiler/iohclustering"
	"github.com/iohprofiler/iohclustering/blobstore"
	"github.com/iohprofiler/iohclustering/dataset"
)

// Descriptor identifies one baseline dataset of the benchmark suite.
type Descriptor struct {
	ID      int
	Name    string
	File    string // file name within a blobstore.Store
	KValues []int  // cluster counts the suite evaluates by default
}

// baseline is the static catalog. IDs are stable; the table is never
// mutated after init.
var baseline = []Descriptor{
	{ID: 1, Name: "ruspini", File: "ruspini.txt", KValues: []int{2, 3, 4, 5, 10}},
	{ID: 2, Name: "german_towns", File: "german_towns.txt", KValues: []int{2, 3, 4, 5, 10}},
	{ID: 3, Name: "iris", File: "iris.txt", KValues: []int{2, 3, 5, 10}},
	{ID: 4, Name: "wine", File: "wine.txt", KValues: []int{2, 3, 5, 10}},
	{ID: 5, Name: "glass", File: "glass.txt", KValues: []int{2, 3, 5, 10}},
	{ID: 6, Name: "seeds", File: "seeds.txt", KValues: []int{2, 3, 5, 10}},
	{ID: 7, Name: "yeast", File: "yeast.txt", KValues: []int{2, 3, 5, 10}},
	{ID: 8, Name: "segmentation", File: "segmentation.txt", KValues: []int{2, 3, 5, 10}},
}

var (
	byID   map[int]Descriptor
	byName map[string]Descriptor
)

func init() {
	byID = make(map[int]Descriptor, len(baseline))
	byName = make(map[string]Descriptor, len(baseline))
	for _, d := range baseline {
		byID[d.ID] = d
		byName[d.Name] = d
	}
}

// Descriptors returns the catalog ordered by ID.
func Descriptors() []Descriptor {
	out := append([]Descriptor(nil), baseline...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DescriptorByID looks up a baseline dataset by its problem ID.
func DescriptorByID(id int) (Descriptor, bool) {
	d, ok := byID[id]
	return d, ok
}

// DescriptorByName looks up a baseline dataset by name (case-insensitive).
func DescriptorByName(name string) (Descriptor, bool) {
	d, ok := byName[strings.ToLower(name)]
	return d, ok
}

// ProblemID resolves a dataset name to its problem ID.
func ProblemID(name string) (int, error) {
	d, ok := DescriptorByName(name)
	if !ok {
		return 0, unknownDataset(name)
	}
	return d.ID, nil
}

func unknownDataset(fid any) error {
	return iohclustering.UnknownDatasetError(fid)
}

func build(ctx context.Context, store blobstore.Store, desc Descriptor, k int, opts []iohclustering.Option) (*iohclustering.Problem, error) {
	ds, err := dataset.Load(ctx, store, desc.File)
	if err != nil {
		return nil, err
	}

	opts = append([]iohclustering.Option{
		iohclustering.WithName(fmt.Sprintf("Cluster_%s_k%d", desc.Name, k)),
		iohclustering.WithID(desc.ID),
	}, opts...)

	return iohclustering.NewFromDataset(ds, k, opts...)
}

// Problem constructs the clustering problem for a named baseline dataset
// with k clusters, loading the dataset file from store. Solutions can be
// mapped back to original feature space via the problem's Retransform.
func Problem(ctx context.Context, store blobstore.Store, name string, k int, opts ...iohclustering.Option) (*iohclustering.Problem, error) {
	desc, ok := DescriptorByName(name)
	if !ok {
		return nil, unknownDataset(name)
	}
	return build(ctx, store, desc, k, opts)
}

// ProblemByID is Problem keyed by the numeric problem ID.
func ProblemByID(ctx context.Context, store blobstore.Store, id, k int, opts ...iohclustering.Option) (*iohclustering.Problem, error) {
	desc, ok := DescriptorByID(id)
	if !ok {
		return nil, unknownDataset(id)
	}
	return build(ctx, store, desc, k, opts)
}

// LoadProblems constructs every catalog problem for its default k values,
// keyed by problem name. Datasets missing from the store are skipped;
// any other failure aborts the load. Datasets load concurrently.
func LoadProblems(ctx context.Context, store blobstore.Store, opts ...iohclustering.Option) (map[string]*iohclustering.Problem, error) {
	var mu sync.Mutex
	problems := make(map[string]*iohclustering.Problem)

	g, ctx := errgroup.WithContext(ctx)
	for _, desc := range baseline {
		desc := desc
		g.Go(func() error {
			ds, err := dataset.Load(ctx, store, desc.File)
			if errors.Is(err, blobstore.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", desc.Name, err)
			}

			for _, k := range desc.KValues {
				name := fmt.Sprintf("Cluster_%s_k%d", desc.Name, k)
				problemOpts := append([]iohclustering.Option{
					iohclustering.WithName(name),
					iohclustering.WithID(desc.ID),
				}, opts...)

				p, err := iohclustering.NewFromDataset(ds, k, problemOpts...)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}

				mu.Lock()
				problems[name] = p
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return problems, nil
}
