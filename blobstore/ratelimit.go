package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// WithRateLimit wraps a Store so that reads are throttled to roughly
// bytesPerSec. Useful when pulling benchmark datasets from shared remote
// storage. If bytesPerSec <= 0 the store is returned unchanged.
func WithRateLimit(s Store, bytesPerSec int) Store {
	if bytesPerSec <= 0 {
		return s
	}
	return &limitedStore{
		inner:   s,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

type limitedStore struct {
	inner   Store
	limiter *rate.Limiter
}

func (s *limitedStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &limitedReader{ctx: ctx, rc: rc, limiter: s.limiter}, nil
}

type limitedReader struct {
	ctx     context.Context
	rc      io.ReadCloser
	limiter *rate.Limiter
}

func (r *limitedReader) Read(p []byte) (int, error) {
	// Cap each wait at the limiter burst so large buffers remain servable.
	if burst := r.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := r.rc.Read(p)
	if n > 0 {
		if werr := r.limiter.WaitN(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *limitedReader) Close() error {
	return r.rc.Close()
}
