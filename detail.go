package bitsearch

// Detail holds what a torrent detail page reveals beyond the search listing.
type Detail struct {
	Title    string
	Magnet   string
	InfoHash string
	Files    []File
}

// File is a single entry in a torrent's file list.
type File struct {
	Name string
	Size string // as displayed, e.g. "1.95 GB"
}

// DetailParser parses a torrent detail page.
type DetailParser interface {
	// Parse extracts detail information from the page HTML.
	// Returns ENOTFOUND if the page carries no torrent information.
	Parse(html string) (*Detail, error)
}
