package search_test

import (
	"testing"

	"github.com/fwojciec/bitsearch"
	"github.com/fwojciec/bitsearch/mock"
	"github.com/fwojciec/bitsearch/search"
	"github.com/stretchr/testify/assert"
)

func TestCompositeExtractor_Extract(t *testing.T) {
	t.Parallel()

	result := func(name string) []*bitsearch.Result {
		return []*bitsearch.Result{{Name: name, Link: "magnet:?" + name}}
	}

	t.Run("uses primary results when present", func(t *testing.T) {
		t.Parallel()

		fallbackCalled := false
		primary := &mock.Extractor{ExtractFn: func(string) []*bitsearch.Result { return result("primary") }}
		fallback := &mock.Extractor{ExtractFn: func(string) []*bitsearch.Result {
			fallbackCalled = true
			return result("fallback")
		}}

		results := search.NewCompositeExtractor(primary, fallback).Extract("<html>")

		assert.Equal(t, "primary", results[0].Name)
		assert.False(t, fallbackCalled, "fallback should not run when primary finds results")
	})

	t.Run("falls back when primary finds nothing", func(t *testing.T) {
		t.Parallel()

		primary := &mock.Extractor{ExtractFn: func(string) []*bitsearch.Result { return nil }}
		fallback := &mock.Extractor{ExtractFn: func(string) []*bitsearch.Result { return result("fallback") }}

		results := search.NewCompositeExtractor(primary, fallback).Extract("<html>")

		assert.Len(t, results, 1)
		assert.Equal(t, "fallback", results[0].Name)
	})

	t.Run("empty fallback output is forwarded as is", func(t *testing.T) {
		t.Parallel()

		primary := &mock.Extractor{ExtractFn: func(string) []*bitsearch.Result { return nil }}
		fallback := &mock.Extractor{ExtractFn: func(string) []*bitsearch.Result { return nil }}

		results := search.NewCompositeExtractor(primary, fallback).Extract("<html>")

		assert.Empty(t, results)
	})

	t.Run("nil fallback returns primary output", func(t *testing.T) {
		t.Parallel()

		primary := &mock.Extractor{ExtractFn: func(string) []*bitsearch.Result { return nil }}

		results := search.NewCompositeExtractor(primary, nil).Extract("<html>")

		assert.Empty(t, results)
	})
}
