package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bitsearch"
)

// Ensure LoggingDownloader implements bitsearch.Downloader.
var _ bitsearch.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   bitsearch.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next bitsearch.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, identifier string) (path string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("download",
			"id", identifier,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, identifier)
}
