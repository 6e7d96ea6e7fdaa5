package bitsearch

// Extractor pulls result records out of a single search result page.
//
// Implementations scan raw text and never require well-formed markup.
// An empty slice is a valid outcome, not an error. Returned results are in
// document order and each one satisfies Valid.
type Extractor interface {
	Extract(html string) []*Result
}
