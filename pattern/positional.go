package pattern

import (
	"strconv"
	"strings"

	"github.com/fwojciec/bitsearch"
)

// Ensure PositionalExtractor implements bitsearch.Extractor at compile time.
var _ bitsearch.Extractor = (*PositionalExtractor)(nil)

// Columns holds every match of each field pattern across a whole page,
// in document order. Sizes are raw tokens like "1.95 GB".
type Columns struct {
	Magnets []string
	Titles  []string
	Sizes   []string
	Seeds   []string
	Leeches []string
	Paths   []string
}

// Collect scans flattened page text once per field.
func Collect(text string) Columns {
	var sizes []string
	for _, m := range sizeRe.FindAllStringSubmatch(text, -1) {
		sizes = append(sizes, m[1]+" "+m[2])
	}

	return Columns{
		Magnets: allSubmatches(magnetRe, text),
		Titles:  allSubmatches(titleRe, text),
		Sizes:   sizes,
		Seeds:   allSubmatches(seedsRe, text),
		Leeches: allSubmatches(leechRe, text),
		Paths:   allSubmatches(pathRe, text),
	}
}

// PositionalExtractor is the fallback extraction strategy for pages where
// no heading-anchored block matched. It collects each field independently
// and pairs the N-th magnet with the N-th title, size, seed count, and so on.
//
// Pairing assumes the page lists every field in the same relative order.
// Nothing checks that the N-th magnet belongs to the N-th title, so a page
// that omits a field for one result shifts every later result.
type PositionalExtractor struct {
	site bitsearch.Site
}

// NewPositionalExtractor creates a PositionalExtractor for the given site.
func NewPositionalExtractor(site bitsearch.Site) *PositionalExtractor {
	return &PositionalExtractor{site: site}
}

// Extract returns the valid results found in the page.
func (e *PositionalExtractor) Extract(html string) []*bitsearch.Result {
	return e.Pair(Collect(Flatten(html)))
}

// Pair combines columns by index. The number of results is bounded by the
// shorter of Magnets and Titles; when there are no titles at all it is
// bounded by Magnets and results are named "Torrent 1", "Torrent 2", ...
// Publish dates are never paired and stay unknown.
func (e *PositionalExtractor) Pair(c Columns) []*bitsearch.Result {
	n := len(c.Magnets)
	if len(c.Titles) > 0 && len(c.Titles) < n {
		n = len(c.Titles)
	}

	var results []*bitsearch.Result
	for i := 0; i < n; i++ {
		r := bitsearch.NewResult(e.site.URL())
		r.Link = attr(c.Magnets[i])

		if len(c.Titles) > 0 {
			r.Name = strings.TrimSpace(attr(c.Titles[i]))
		} else {
			r.Name = "Torrent " + strconv.Itoa(i+1)
		}
		if i < len(c.Sizes) {
			r.Size = ParseSize(c.Sizes[i]).String()
		}
		if i < len(c.Seeds) {
			r.Seeds = c.Seeds[i]
		}
		if i < len(c.Leeches) {
			r.Leech = c.Leeches[i]
		}
		if i < len(c.Paths) {
			r.DescLink = e.site.DescURL(c.Paths[i])
		}

		if r.Valid() {
			results = append(results, r)
		}
	}

	return results
}
