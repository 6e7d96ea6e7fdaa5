package bitsearch

import (
	"context"
	"time"
)

// StoredResult is a result persisted by a ResultStore together with the
// search that produced it.
type StoredResult struct {
	ID        string
	Query     string
	Category  string
	LinkHash  string
	FetchedAt time.Time
	Result
}

// Validate returns an error if the stored result contains invalid fields.
func (s *StoredResult) Validate() error {
	if s.Query == "" {
		return Errorf(EINVALID, "query required")
	}
	return s.Result.Validate()
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	Query    *string
	LinkHash *string

	Limit  int
	Offset int
}

// ResultStore persists search results for later inspection.
type ResultStore interface {
	// CreateResult stores a result. ID, LinkHash and FetchedAt are set by
	// the store.
	CreateResult(ctx context.Context, r *StoredResult) error

	// FindResults returns stored results matching the filter, newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*StoredResult, error)

	// DeleteResults removes results for query, or all results when query
	// is empty. Returns the number of rows removed.
	DeleteResults(ctx context.Context, query string) (int, error)
}

// StoreSink is a Sink that saves every result to a ResultStore.
type StoreSink struct {
	Store    ResultStore
	Query    string
	Category string
}

// Emit implements Sink.
func (s *StoreSink) Emit(ctx context.Context, r *Result) error {
	return s.Store.CreateResult(ctx, &StoredResult{
		Query:    s.Query,
		Category: s.Category,
		Result:   *r,
	})
}
