package search

import "github.com/fwojciec/bitsearch"

// Ensure CompositeExtractor implements bitsearch.Extractor at compile time.
var _ bitsearch.Extractor = (*CompositeExtractor)(nil)

// CompositeExtractor implements bitsearch.Extractor by running a primary
// strategy and falling back to a second one only when the primary finds
// nothing on the page.
type CompositeExtractor struct {
	primary  bitsearch.Extractor
	fallback bitsearch.Extractor
}

// NewCompositeExtractor creates a new CompositeExtractor.
// The fallback parameter may be nil, in which case only primary runs.
func NewCompositeExtractor(primary, fallback bitsearch.Extractor) *CompositeExtractor {
	return &CompositeExtractor{
		primary:  primary,
		fallback: fallback,
	}
}

// Extract implements bitsearch.Extractor.
func (e *CompositeExtractor) Extract(html string) []*bitsearch.Result {
	results := e.primary.Extract(html)
	if len(results) > 0 || e.fallback == nil {
		return results
	}
	return e.fallback.Extract(html)
}
