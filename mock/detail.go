package mock

import "github.com/fwojciec/bitsearch"

var _ bitsearch.DetailParser = (*DetailParser)(nil)

// DetailParser is a mock implementation of bitsearch.DetailParser.
type DetailParser struct {
	ParseFn func(html string) (*bitsearch.Detail, error)
}

func (p *DetailParser) Parse(html string) (*bitsearch.Detail, error) {
	return p.ParseFn(html)
}
