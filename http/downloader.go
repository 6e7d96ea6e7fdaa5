package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/fwojciec/bitsearch"
)

// Ensure Downloader implements bitsearch.Downloader at compile time.
var _ bitsearch.Downloader = (*Downloader)(nil)

// Downloader saves .torrent files to local temporary files.
// Magnet URIs need no download and are returned unchanged.
type Downloader struct {
	client    *http.Client
	userAgent string
	dir       string
}

// NewDownloader creates a Downloader that writes files to dir.
// An empty dir uses os.TempDir().
func NewDownloader(dir string, opts ...Option) *Downloader {
	o := newOptions(opts)
	return &Downloader{
		client:    o.client,
		userAgent: o.userAgent,
		dir:       dir,
	}
}

// Download fetches identifier and returns the path of the saved file.
// Returns EINVALID for identifiers that are neither magnet nor http(s) URLs.
func (d *Downloader) Download(ctx context.Context, identifier string) (string, error) {
	if strings.HasPrefix(identifier, "magnet:") {
		return identifier, nil
	}
	if !strings.HasPrefix(identifier, "http://") && !strings.HasPrefix(identifier, "https://") {
		return "", bitsearch.Errorf(bitsearch.EINVALID, "cannot download %q", identifier)
	}

	resp, err := get(ctx, d.client, identifier, d.userAgent, "application/x-bittorrent,*/*;q=0.8")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	f, err := os.CreateTemp(d.dir, "bitsearch-*.torrent")
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}
