package mock

import (
	"context"

	"github.com/fwojciec/bitsearch"
)

var (
	_ bitsearch.Fetcher    = (*Fetcher)(nil)
	_ bitsearch.Downloader = (*Downloader)(nil)
)

// Fetcher is a mock implementation of bitsearch.Fetcher.
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

// Downloader is a mock implementation of bitsearch.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, identifier string) (string, error)
}

func (d *Downloader) Download(ctx context.Context, identifier string) (string, error) {
	return d.DownloadFn(ctx, identifier)
}
