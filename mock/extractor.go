package mock

import "github.com/fwojciec/bitsearch"

var _ bitsearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bitsearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) []*bitsearch.Result
}

func (e *Extractor) Extract(html string) []*bitsearch.Result {
	return e.ExtractFn(html)
}
