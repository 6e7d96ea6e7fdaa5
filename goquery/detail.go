// Package goquery parses torrent detail pages with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bitsearch"
)

// Ensure DetailParser implements bitsearch.DetailParser at compile time.
var _ bitsearch.DetailParser = (*DetailParser)(nil)

// Selectors used on detail pages. Each list is tried in order and the first
// non-empty match wins.
var (
	titleSelectors = []string{"h1.title", "h1", "title"}
	fileSelectors  = []string{".file-list li", "ul.files li", "table.file-list tbody tr"}
	nameSelectors  = []string{".file-name", ".name", "td:first-child"}
	sizeSelectors  = []string{".file-size", ".size", "td:last-child"}
)

// DetailParser extracts torrent details from a detail page.
type DetailParser struct{}

// NewDetailParser creates a new DetailParser.
func NewDetailParser() *DetailParser {
	return &DetailParser{}
}

// Parse extracts the title, magnet link, info hash and file list.
// Returns ENOTFOUND if the page has neither a magnet link nor a title.
func (p *DetailParser) Parse(html string) (*bitsearch.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bitsearch.Errorf(bitsearch.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &bitsearch.Detail{
		Title: firstText(doc.Selection, titleSelectors),
	}
	if href, ok := doc.Find("a[href^='magnet:']").First().Attr("href"); ok {
		d.Magnet = href
		d.InfoHash = bitsearch.InfoHash(href)
	}
	if d.Title == "" && d.Magnet == "" {
		return nil, bitsearch.Errorf(bitsearch.ENOTFOUND, "no torrent found on page")
	}

	d.Files = parseFiles(doc)
	return d, nil
}

func parseFiles(doc *goquery.Document) []bitsearch.File {
	var files []bitsearch.File
	for _, sel := range fileSelectors {
		doc.Find(sel).Each(func(_ int, entry *goquery.Selection) {
			name := firstText(entry, nameSelectors)
			size := firstText(entry, sizeSelectors)
			if name == "" {
				// Bare list items carry the name as their own text.
				name = strings.TrimSpace(strings.TrimSuffix(collapse(entry.Text()), size))
			}
			if name == "" || name == size {
				return
			}
			files = append(files, bitsearch.File{Name: name, Size: size})
		})
		if len(files) > 0 {
			return files
		}
	}
	return nil
}

func firstText(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if text := collapse(s.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// collapse trims s and folds internal whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
