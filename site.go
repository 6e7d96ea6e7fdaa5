package bitsearch

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// MaxPages is the number of search result pages requested per search.
const MaxPages = 3

// Default site identity.
const (
	DefaultURL  = "https://bitsearch.to"
	DefaultName = "BitSearch"
)

// CategoryAll is the category key that applies no category filter.
const CategoryAll = "all"

// Site describes the searched index: its root URL, display name and the
// mapping from category keys to the site's category path segments.
// A Site is immutable once constructed; use NewSite or DefaultSite.
type Site struct {
	url        string
	name       string
	categories map[string]string
}

// DefaultCategories returns the category key to segment mapping of the
// default site. A fresh map is returned on every call.
func DefaultCategories() map[string]string {
	return map[string]string{
		CategoryAll: "",
		"anime":     "anime",
		"books":     "books",
		"games":     "games",
		"movies":    "movies",
		"music":     "music",
		"software":  "apps",
		"tv":        "tv",
	}
}

// DefaultSite returns the site searched when nothing else is configured.
func DefaultSite() Site {
	return NewSite(DefaultURL, DefaultName, DefaultCategories())
}

// NewSite creates a Site. The categories map is copied so later changes
// by the caller are not observed. A trailing slash on rootURL is removed.
func NewSite(rootURL, name string, categories map[string]string) Site {
	cats := make(map[string]string, len(categories))
	for k, v := range categories {
		cats[k] = v
	}
	return Site{
		url:        strings.TrimRight(rootURL, "/"),
		name:       name,
		categories: cats,
	}
}

// URL returns the site root, e.g. "https://bitsearch.to".
func (s Site) URL() string {
	return s.url
}

// Name returns the display name of the site.
func (s Site) Name() string {
	return s.name
}

// Category returns the path segment for a category key.
// ok is false for unknown keys.
func (s Site) Category(key string) (segment string, ok bool) {
	segment, ok = s.categories[key]
	return segment, ok
}

// CategoryKeys returns the supported category keys in sorted order.
func (s Site) CategoryKeys() []string {
	keys := make([]string, 0, len(s.categories))
	for k := range s.categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Categories returns a copy of the category mapping.
func (s Site) Categories() map[string]string {
	cats := make(map[string]string, len(s.categories))
	for k, v := range s.categories {
		cats[k] = v
	}
	return cats
}

// SearchURLs returns one search URL per result page, pages 1 through MaxPages.
func (s Site) SearchURLs(query, category string) []string {
	urls := make([]string, 0, MaxPages)
	for page := 1; page <= MaxPages; page++ {
		urls = append(urls, s.PageURL(query, category, page))
	}
	return urls
}

// PageURL returns the search URL for a single result page.
//
// The query is escaped as a form value (spaces become "+"). The category
// parameter is left out entirely when the key is unknown or maps to an
// empty segment. Page 1 carries no page parameter; the site treats an
// explicit page=1 differently from its absence.
func (s Site) PageURL(query, category string, page int) string {
	var b strings.Builder
	b.WriteString(s.url)
	b.WriteString("/search?q=")
	b.WriteString(url.QueryEscape(query))

	if segment, ok := s.Category(category); ok && segment != "" {
		b.WriteString("&category=")
		b.WriteString(url.QueryEscape(segment))
	}

	if page > 1 {
		b.WriteString("&page=")
		b.WriteString(strconv.Itoa(page))
	}

	return b.String()
}

// DescURL returns the absolute detail page URL for a path like
// "/torrent/5cb8afc48700981f3e5b00c4". An empty path yields "".
func (s Site) DescURL(path string) string {
	if path == "" {
		return ""
	}
	return s.url + path
}
