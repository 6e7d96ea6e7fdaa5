package search

import (
	"github.com/fwojciec/bitsearch"
	"github.com/fwojciec/bitsearch/bloom"
)

var _ bitsearch.Deduper = (*MagnetDeduper)(nil)

// MagnetDeduper recognizes results that point at the same torrent. Results
// are keyed by magnet info hash, or by the full link when it has none.
// Because it is backed by a Bloom filter, a small fraction of distinct
// results may be reported as seen.
type MagnetDeduper struct {
	filter *bloom.Filter
}

// NewMagnetDeduper creates a deduper sized for n results with the given
// false positive rate.
func NewMagnetDeduper(n uint, fpRate float64) *MagnetDeduper {
	return &MagnetDeduper{filter: bloom.NewFilter(n, fpRate)}
}

// Seen implements bitsearch.Deduper.
func (d *MagnetDeduper) Seen(r *bitsearch.Result) bool {
	key := bitsearch.InfoHash(r.Link)
	if key == "" {
		key = r.Link
	}
	return d.filter.TestAndAdd(key)
}
