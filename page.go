package bitsearch

// PageProgress reports the outcome of processing one search result page.
type PageProgress struct {
	URL     string
	Page    int // 1-based
	Total   int
	Results int   // records forwarded to the sink
	Error   error // non-nil when the page was skipped
}

// PageProgressFunc is called once per page after it has been processed.
type PageProgressFunc func(PageProgress)
