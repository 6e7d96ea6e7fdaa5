package mock

import (
	"context"

	"github.com/fwojciec/bitsearch"
)

var (
	_ bitsearch.DomainLimiter = (*DomainLimiter)(nil)
	_ bitsearch.Deduper       = (*Deduper)(nil)
)

// DomainLimiter is a mock implementation of bitsearch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// Deduper is a mock implementation of bitsearch.Deduper.
type Deduper struct {
	SeenFn func(r *bitsearch.Result) bool
}

func (d *Deduper) Seen(r *bitsearch.Result) bool {
	return d.SeenFn(r)
}
