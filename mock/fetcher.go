package mock

import (
	"context"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of chronoclip.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
