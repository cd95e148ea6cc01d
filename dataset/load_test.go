package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iohprofiler/iohclustering/blobstore"
)

const sample = "1.0,2.0\n2.0,3.0\n\n8.5,9.5\n"

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 2, ds.Dim())
	assert.Equal(t, []float64{8.5, 9.5}, ds.Point(2))
}

func TestReadWhitespace(t *testing.T) {
	ds, err := Read(strings.NewReader(" 1.0 , 2.0 \n3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, ds.Point(0))
	assert.Equal(t, []float64{3, 4}, ds.Point(1))
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"NotANumber", "1,2\nfoo,4\n"},
		{"Ragged", "1,2\n3\n"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	ds, err := Decode("iris.txt.gz", &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestDecodeLZ4(t *testing.T) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	_, err := zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	ds, err := Decode("iris.txt.lz4", &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestDecodePlain(t *testing.T) {
	ds, err := Decode("iris.txt", strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	ds, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	_, err = Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put("iris.txt", []byte(sample))

	ds, err := Load(context.Background(), store, "iris.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	_, err = Load(context.Background(), store, "missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
