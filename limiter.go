package bitsearch

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Deduper remembers which results have already been emitted.
type Deduper interface {
	// Seen records the result and reports whether an equivalent result
	// was recorded before.
	Seen(r *Result) bool
}
