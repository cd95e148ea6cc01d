package iohclustering

import (
	"errors"
	"fmt"

	"github.com/iohprofiler/iohclustering/assign"
	"github.com/iohprofiler/iohclustering/codec"
	"github.com/iohprofiler/iohclustering/dataset"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrUnknownDataset is returned when a benchmark dataset name or ID
	// cannot be resolved.
	ErrUnknownDataset = errors.New("unknown dataset")
)

// ConfigError indicates invalid construction parameters: k out of range, an
// empty or ragged dataset, or an unknown benchmark dataset.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConfigError struct {
	Param  string
	Reason string
	cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.cause }

// ShapeError indicates a decision vector of the wrong length or a custom
// distance function returning a malformed result.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ShapeError struct {
	What     string
	Expected int
	Actual   int
	cause    error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s shape mismatch: expected %d, got %d", e.What, e.Expected, e.Actual)
}

func (e *ShapeError) Unwrap() error { return e.cause }

// UnknownDatasetError builds the ConfigError for a benchmark dataset name
// or ID that is not in the catalog. Satisfies errors.Is(err, ErrUnknownDataset).
func UnknownDatasetError(fid any) error {
	return &ConfigError{
		Param:  "dataset",
		Reason: fmt.Sprintf("no benchmark dataset %v", fid),
		cause:  ErrUnknownDataset,
	}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var vl *codec.ErrVectorLength
	if errors.As(err, &vl) {
		return &ShapeError{What: "decision vector", Expected: vl.Expected, Actual: vl.Actual, cause: err}
	}
	var dsh *assign.ErrDistanceShape
	if errors.As(err, &dsh) {
		return &ShapeError{What: "distance result", Expected: dsh.Expected, Actual: dsh.Actual, cause: err}
	}

	if errors.Is(err, dataset.ErrEmpty) {
		return &ConfigError{Param: "dataset", Reason: "no points", cause: err}
	}
	var rg *dataset.ErrRagged
	if errors.As(err, &rg) {
		return &ConfigError{Param: "dataset", Reason: rg.Error(), cause: err}
	}

	return err
}
