//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/bitsearch"
	"github.com/fwojciec/bitsearch/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements bitsearch.Fetcher.
var _ bitsearch.Fetcher = (*rod.Fetcher)(nil)

func newFetcher(t *testing.T, opts ...rod.Option) *rod.Fetcher {
	t.Helper()
	f, err := rod.NewFetcher(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestFetcher_Fetch_CanceledContext(t *testing.T) {
	t.Parallel()

	hang := make(chan struct{})
	t.Cleanup(func() { close(hang) })
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-hang
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFetcher(t).Fetch(ctx, srv.URL+"/search?q=ubuntu")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Fetch_ScriptInsertedResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html><body>
<div id="results">placeholder</div>
<script>
var h = document.createElement('h3');
h.innerHTML = '<a href="/torrent/42">ubuntu-24.04-desktop-amd64.iso</a>';
document.getElementById('results').replaceChildren(h);
</script>
</body></html>`))
	}))
	t.Cleanup(srv.Close)

	html, err := newFetcher(t).Fetch(context.Background(), srv.URL+"/search?q=ubuntu")

	require.NoError(t, err)
	assert.Contains(t, html, `<a href="/torrent/42">ubuntu-24.04-desktop-amd64.iso</a>`)
	assert.NotContains(t, html, "placeholder")
}

func TestFetcher_Fetch_SlowPageHitsTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`<html><body>late</body></html>`))
	}))
	t.Cleanup(srv.Close)

	f := newFetcher(t, rod.WithFetchTimeout(100*time.Millisecond))
	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Close_Idempotent(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())
}

func TestFetcher_Fetch_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	err = fetcher.Close()
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), "https://bitsearch.to")

	require.Error(t, err)
	assert.Equal(t, bitsearch.EINVALID, bitsearch.ErrorCode(err))
	assert.Contains(t, bitsearch.ErrorMessage(err), "closed")
}

func TestFetcher_Fetch_SendsUserAgent(t *testing.T) {
	t.Parallel()

	gotUA := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case gotUA <- r.Header.Get("User-Agent"):
		default:
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>ok</body></html>`))
	}))
	t.Cleanup(srv.Close)

	_, err := newFetcher(t, rod.WithUserAgent("bitsearch-test")).Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "bitsearch-test", <-gotUA)
}
