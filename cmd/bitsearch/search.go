package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/bitsearch"
	"github.com/fwojciec/bitsearch/fs"
	"github.com/fwojciec/bitsearch/pattern"
	"github.com/fwojciec/bitsearch/search"
	bsslog "github.com/fwojciec/bitsearch/slog"
)

// Dedupe filter sizing: three pages of results with a low false positive
// rate.
const (
	dedupeCapacity = 1000
	dedupeFPRate   = 0.001
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	sinks := bitsearch.MultiSink{NewLineSink(deps.Stdout)}
	if c.Save {
		sinks = append(sinks, &bestEffortSink{
			next:   &bitsearch.StoreSink{Store: deps.Store, Query: query, Category: c.Category},
			logger: deps.Logger,
		})
	}

	var out *fs.FileSink
	if c.Output != "" {
		out = fs.NewFileSink(c.Output)
		sinks = append(sinks, out)
	}

	s := &search.Searcher{
		Site:        deps.Site,
		Fetcher:     deps.Fetcher,
		Extractor:   newExtractor(deps.Site, deps.Logger),
		Sink:        sinks,
		Logger:      deps.Logger,
		Concurrency: c.Concurrency,
		Progress: func(p bitsearch.PageProgress) {
			deps.Logger.Debug("page done",
				"page", p.Page,
				"total", p.Total,
				"results", p.Results,
			)
		},
	}
	if c.Rate > 0 {
		s.RateLimiter = search.NewDomainLimiter(c.Rate, 1)
	}
	if c.Dedupe {
		s.Deduper = search.NewMagnetDeduper(dedupeCapacity, dedupeFPRate)
	}

	n, err := s.Search(deps.Ctx, query, c.Category)
	if err != nil {
		if out != nil {
			_ = out.Abort()
		}
		return err
	}
	if out != nil {
		if err := out.Commit(); err != nil {
			_ = out.Abort()
			return fmt.Errorf("writing %s: %w", c.Output, err)
		}
	}

	deps.Logger.Info("search complete", "query", query, "category", c.Category, "results", n)
	return nil
}

// newExtractor returns the block extractor with positional pairing as
// fallback.
func newExtractor(site bitsearch.Site, logger *slog.Logger) bitsearch.Extractor {
	return search.NewCompositeExtractor(
		bsslog.NewLoggingExtractor("block", pattern.NewBlockExtractor(site), logger),
		bsslog.NewLoggingExtractor("positional", pattern.NewPositionalExtractor(site), logger),
	)
}
