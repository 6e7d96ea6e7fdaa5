package bitsearch

import "context"

// Fetcher retrieves page content from URLs.
// Implementations own timeouts and retries; callers treat Fetch as an
// opaque call that may block, return empty content, or fail.
type Fetcher interface {
	// Fetch returns the page body as text.
	// An empty string with a nil error means the page had no content.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Downloader resolves a result identifier (magnet URI or .torrent URL)
// to something a torrent client can open: a local file path, or the
// identifier itself when nothing needs downloading.
type Downloader interface {
	Download(ctx context.Context, identifier string) (path string, err error)
}
