package mock

import (
	"context"

	"github.com/fwojciec/bitsearch"
)

var _ bitsearch.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of bitsearch.ResultStore.
type ResultStore struct {
	CreateResultFn  func(ctx context.Context, r *bitsearch.StoredResult) error
	FindResultsFn   func(ctx context.Context, filter bitsearch.ResultFilter) ([]*bitsearch.StoredResult, error)
	DeleteResultsFn func(ctx context.Context, query string) (int, error)
}

func (s *ResultStore) CreateResult(ctx context.Context, r *bitsearch.StoredResult) error {
	return s.CreateResultFn(ctx, r)
}

func (s *ResultStore) FindResults(ctx context.Context, filter bitsearch.ResultFilter) ([]*bitsearch.StoredResult, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultStore) DeleteResults(ctx context.Context, query string) (int, error) {
	return s.DeleteResultsFn(ctx, query)
}
