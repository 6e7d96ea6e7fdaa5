// Package search orchestrates a torrent search: it builds the result page
// URLs, fetches and extracts each page, and forwards valid results to a sink.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/fwojciec/bitsearch"
	"golang.org/x/sync/errgroup"
)

// Searcher runs searches against a single site.
//
// A failure on one page (fetch error, extractor panic, sink error) is logged
// and that page is skipped; it never aborts the search. Only context
// cancellation stops a search early.
type Searcher struct {
	Site      bitsearch.Site
	Fetcher   bitsearch.Fetcher
	Extractor bitsearch.Extractor
	Sink      bitsearch.Sink
	Logger    *slog.Logger

	// Optional.
	RateLimiter bitsearch.DomainLimiter
	Deduper     bitsearch.Deduper
	Progress    bitsearch.PageProgressFunc

	// Concurrency is the number of pages fetched in parallel.
	// Values below 2 fetch pages one after another. Results are forwarded
	// in page order either way.
	Concurrency int
}

// pageResult holds the outcome of fetching and extracting one page.
type pageResult struct {
	url     string
	results []*bitsearch.Result
	err     error
}

// Search fetches every result page for query and category and forwards the
// valid results to the sink. It returns the number of results forwarded.
// The error is non-nil only when ctx was canceled.
func (s *Searcher) Search(ctx context.Context, query, category string) (int, error) {
	urls := s.Site.SearchURLs(query, category)

	if s.Concurrency > 1 {
		return s.searchParallel(ctx, urls)
	}

	var emitted int
	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return emitted, err
		}
		page := s.processPage(ctx, u)
		emitted += s.forward(ctx, i, len(urls), page)
	}
	return emitted, ctx.Err()
}

func (s *Searcher) searchParallel(ctx context.Context, urls []string) (int, error) {
	pages := make([]pageResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for i, u := range urls {
		g.Go(func() error {
			pages[i] = s.processPage(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	var emitted int
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return emitted, err
		}
		emitted += s.forward(ctx, i, len(urls), page)
	}
	return emitted, ctx.Err()
}

// processPage fetches and extracts a single page.
func (s *Searcher) processPage(ctx context.Context, pageURL string) (page pageResult) {
	page.url = pageURL

	defer func() {
		if p := recover(); p != nil {
			page.results = nil
			page.err = fmt.Errorf("processing %s: %v", pageURL, p)
		}
	}()

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, domain(pageURL)); err != nil {
			page.err = err
			return page
		}
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		page.err = fmt.Errorf("fetching %s: %w", pageURL, err)
		return page
	}
	if html == "" {
		s.logger().Info("empty page", "url", pageURL)
		return page
	}

	page.results = s.Extractor.Extract(html)
	return page
}

// forward sends a page's valid results to the sink and reports progress.
// It returns the number of results emitted.
func (s *Searcher) forward(ctx context.Context, i, total int, page pageResult) int {
	var emitted int
	err := page.err

	if err == nil {
		for _, r := range page.results {
			if !r.Valid() {
				continue
			}
			if s.Deduper != nil && s.Deduper.Seen(r) {
				continue
			}
			if err = s.Sink.Emit(ctx, r); err != nil {
				err = fmt.Errorf("emitting result from %s: %w", page.url, err)
				break
			}
			emitted++
		}
	}

	if err != nil {
		s.logger().Error("skipping page",
			"page", i+1,
			"url", page.url,
			"err", err,
		)
	}

	if s.Progress != nil {
		s.Progress(bitsearch.PageProgress{
			URL:     page.url,
			Page:    i + 1,
			Total:   total,
			Results: emitted,
			Error:   err,
		})
	}

	return emitted
}

func (s *Searcher) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// domain returns the host of a URL, or the URL itself if it cannot be parsed.
func domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
