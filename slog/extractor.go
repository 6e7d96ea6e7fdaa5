package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bitsearch"
)

// Ensure LoggingExtractor implements bitsearch.Extractor.
var _ bitsearch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging. The name
// distinguishes extractors when several are chained.
type LoggingExtractor struct {
	name   string
	next   bitsearch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(name string, next bitsearch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{name: name, next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result count.
func (e *LoggingExtractor) Extract(html string) (results []*bitsearch.Result) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"extractor", e.name,
			"results", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
