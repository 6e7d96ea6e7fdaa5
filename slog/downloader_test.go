package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/bitsearch/mock"
	bsslog "github.com/fwojciec/bitsearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("logs identifier and path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Downloader{
			DownloadFn: func(ctx context.Context, identifier string) (string, error) {
				return "/tmp/bitsearch-1.torrent", nil
			},
		}

		d := bsslog.NewLoggingDownloader(inner, debugLogger(&buf))
		path, err := d.Download(context.Background(), "https://bitsearch.to/dl/1")

		require.NoError(t, err)
		assert.Equal(t, "/tmp/bitsearch-1.torrent", path)
		output := buf.String()
		assert.Contains(t, output, "download")
		assert.Contains(t, output, "path=/tmp/bitsearch-1.torrent")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Downloader{
			DownloadFn: func(ctx context.Context, identifier string) (string, error) {
				return "", errors.New("HTTP 404")
			},
		}

		_, err := bsslog.NewLoggingDownloader(inner, debugLogger(&buf)).Download(context.Background(), "https://x")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"HTTP 404\"")
	})
}
