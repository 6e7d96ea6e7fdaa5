package search_test

import (
	"testing"

	"github.com/fwojciec/bitsearch"
	"github.com/fwojciec/bitsearch/search"
	"github.com/stretchr/testify/assert"
)

func TestMagnetDeduper_Seen(t *testing.T) {
	t.Parallel()

	t.Run("same info hash with different trackers is a duplicate", func(t *testing.T) {
		t.Parallel()

		d := search.NewMagnetDeduper(100, 0.01)

		first := &bitsearch.Result{Link: "magnet:?xt=urn:btih:ABCD&tr=udp://a"}
		second := &bitsearch.Result{Link: "magnet:?xt=urn:btih:abcd&tr=udp://b"}

		assert.False(t, d.Seen(first))
		assert.True(t, d.Seen(second))
	})

	t.Run("different info hashes are distinct", func(t *testing.T) {
		t.Parallel()

		d := search.NewMagnetDeduper(100, 0.01)

		assert.False(t, d.Seen(&bitsearch.Result{Link: "magnet:?xt=urn:btih:AAAA"}))
		assert.False(t, d.Seen(&bitsearch.Result{Link: "magnet:?xt=urn:btih:BBBB"}))
	})

	t.Run("falls back to full link without info hash", func(t *testing.T) {
		t.Parallel()

		d := search.NewMagnetDeduper(100, 0.01)

		assert.False(t, d.Seen(&bitsearch.Result{Link: "magnet:?dn=x"}))
		assert.True(t, d.Seen(&bitsearch.Result{Link: "magnet:?dn=x"}))
	})
}
