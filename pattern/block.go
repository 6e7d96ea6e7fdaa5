package pattern

import (
	"strings"

	"github.com/fwojciec/bitsearch"
)

// Ensure BlockExtractor implements bitsearch.Extractor at compile time.
var _ bitsearch.Extractor = (*BlockExtractor)(nil)

// Block is one result block: a heading with its detail path and title,
// followed by the text up to the next heading, the pagination container,
// or the end of the page.
type Block struct {
	Path    string
	Title   string
	Content string
}

// Blocks splits flattened page text into result blocks in document order.
// Blocks never overlap.
func Blocks(text string) []Block {
	matches := headingRe.FindAllStringSubmatchIndex(text, -1)
	blocks := make([]Block, 0, len(matches))

	for _, m := range matches {
		start := m[1]
		end := len(text)
		if loc := blockEndRe.FindStringIndex(text[start:]); loc != nil {
			end = start + loc[0]
		}

		blocks = append(blocks, Block{
			Path:    text[m[2]:m[3]],
			Title:   text[m[4]:m[5]],
			Content: text[start:end],
		})
	}

	return blocks
}

// BlockExtractor is the primary extraction strategy. It finds result
// blocks anchored on title headings and reads each field from the text
// that follows the heading.
type BlockExtractor struct {
	site bitsearch.Site
	opts options
}

// NewBlockExtractor creates a BlockExtractor for the given site.
func NewBlockExtractor(site bitsearch.Site, opts ...Option) *BlockExtractor {
	return &BlockExtractor{site: site, opts: newOptions(opts)}
}

// Extract returns the valid results found in the page.
func (e *BlockExtractor) Extract(html string) []*bitsearch.Result {
	var results []*bitsearch.Result
	for _, b := range Blocks(Flatten(html)) {
		r := e.result(b)
		if r.Valid() {
			results = append(results, r)
		}
	}
	return results
}

func (e *BlockExtractor) result(b Block) *bitsearch.Result {
	r := bitsearch.NewResult(e.site.URL())
	r.Name = strings.TrimSpace(attr(b.Title))
	r.DescLink = e.site.DescURL(b.Path)

	// Only the first occurrence of each field counts.
	r.Link = attr(firstSubmatch(magnetRe, b.Content))

	if m := sizeRe.FindStringSubmatch(b.Content); m != nil {
		r.Size = ParseSize(m[1] + " " + m[2]).String()
	}
	if seeds := firstSubmatch(seedsRe, b.Content); seeds != "" {
		r.Seeds = seeds
	}
	if leech := firstSubmatch(leechRe, b.Content); leech != "" {
		r.Leech = leech
	}
	if date := firstSubmatch(dateRe, b.Content); date != "" {
		r.PubDate = ParseDateIn(date, e.opts.loc).String()
	}

	return r
}
