// Package pattern extracts search results from raw result page text using
// regular expressions. It never parses the DOM: pages are flattened to a
// single line and scanned, so broken or partial markup still yields
// whatever can be matched.
package pattern

import (
	"html"
	"regexp"
	"strings"
	"time"
)

var (
	// headingRe anchors a result block: an <h3> holding a link to a detail
	// page. Group 1 is the detail path, group 2 the title text.
	headingRe = regexp.MustCompile(`(?i)<h3[^>]*>.*?<a[^>]*href="(/torrent/[^"]+)"[^>]*>([^<]+)</a>.*?</h3>`)

	// blockEndRe marks where a block's content stops: the next heading or
	// the pagination container.
	blockEndRe = regexp.MustCompile(`(?i)<h3|<div[^>]*class="[^"]*pagination`)

	magnetRe = regexp.MustCompile(`href="(magnet:[^"]+)"`)

	// sizeRe matches the first size-like token anywhere in a block,
	// attribute values included. A magnet href whose info hash ends in
	// "<digit>B" yields a bogus size when it precedes the real one.
	sizeRe  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*([KMGT]?B)\b`)
	seedsRe = regexp.MustCompile(`(?i)(\d+)\s+seeders?`)
	leechRe = regexp.MustCompile(`(?i)(\d+)\s+leechers?`)
	dateRe  = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`)

	titleRe = regexp.MustCompile(`(?i)<a[^>]*href="/torrent/[^"]*"[^>]*>([^<]+)</a>`)
	pathRe  = regexp.MustCompile(`href="(/torrent/[^"]+)"`)
)

var flattener = strings.NewReplacer("\n", " ", "\r", " ")

// Flatten replaces newlines and carriage returns with spaces so that
// patterns can span what were separate lines.
func Flatten(html string) string {
	return flattener.Replace(html)
}

// Option configures an extractor.
type Option func(*options)

type options struct {
	loc *time.Location
}

// WithLocation sets the time zone used to interpret publish dates.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

func newOptions(opts []Option) options {
	o := options{loc: time.Local}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// firstSubmatch returns group 1 of the first match, or "".
func firstSubmatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// allSubmatches returns group 1 of every match in order.
func allSubmatches(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// attr decodes an attribute value or text node as it appeared in the markup.
func attr(s string) string {
	return html.UnescapeString(s)
}
