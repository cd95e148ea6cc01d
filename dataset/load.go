package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"

	"github.com/iohprofiler/iohclustering/blobstore"
)

// Read parses a comma-delimited text dataset, one point per line.
// Blank lines are skipped. All rows must have the same number of columns.
func Read(r io.Reader) (*Dataset, error) {
	var rows [][]float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return FromMatrix(rows)
}

// Decode reads a dataset from r, transparently decompressing based on the
// file name extension: ".gz" (gzip) and ".lz4" are recognized, anything else
// is treated as plain text.
func Decode(name string, r io.Reader) (*Dataset, error) {
	switch filepath.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return Read(zr)
	case ".lz4":
		return Read(lz4.NewReader(r))
	default:
		return Read(r)
	}
}

// Open loads a dataset from a local file.
func Open(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(path, f)
}

// Load fetches the named dataset file from a store and parses it.
func Load(ctx context.Context, store blobstore.Store, name string) (*Dataset, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Decode(name, rc)
}
