package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a dataset file does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for accessing immutable dataset files.
type Store interface {
	// Open opens the named dataset file for reading.
	// The caller owns the returned reader and must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
