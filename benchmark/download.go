package benchmark

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/iohprofiler/iohclustering"
)

// DefaultArchiveURL is the published tar.gz archive of the baseline
// benchmark dataset files.
const DefaultArchiveURL = "https://github.com/IOHprofiler/IOHClustering/blob/main/static.tar.gz?raw=true"

// DownloadOptions configures Download.
type DownloadOptions struct {
	// URL of the tar.gz archive to fetch. Defaults to DefaultArchiveURL.
	URL string

	// HTTPClient performs the request. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives progress and skip warnings. Defaults to no logging.
	Logger *iohclustering.Logger
}

// Download fetches the benchmark dataset archive and extracts it into dir.
// If dir already exists the download is skipped with a warning, so repeated
// calls are cheap. The extracted directory can then back a
// blobstore.LocalStore.
func Download(ctx context.Context, dir string, optFns ...func(*DownloadOptions)) error {
	opts := DownloadOptions{
		URL:        DefaultArchiveURL,
		HTTPClient: http.DefaultClient,
		Logger:     iohclustering.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if _, err := os.Stat(dir); err == nil {
		opts.Logger.Warn("dataset directory already exists, skipping download", "dir", dir)
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return err
	}
	resp, err := opts.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %s", opts.URL, resp.Status)
	}

	opts.Logger.Info("downloading benchmark datasets", "url", opts.URL, "dir", dir)
	return extractTarGz(resp.Body, dir)
}

func extractTarGz(r io.Reader, dir string) error {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer zr.Close()

	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		name := filepath.Clean(hdr.Name)
		if name == "." || strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			continue
		}
		target := filepath.Join(dir, name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}
	}
}
