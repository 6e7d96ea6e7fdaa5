package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/bitsearch/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("d540fc48eb12f2833163eed6421d449dd8f1ce1f"))

	f.Add("d540fc48eb12f2833163eed6421d449dd8f1ce1f")

	assert.True(t, f.Test("d540fc48eb12f2833163eed6421d449dd8f1ce1f"))
	assert.False(t, f.Test("a7838b75c42b612da3b6cc99beed4ecb2d04cff2"))
}

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.TestAndAdd("abcd"), "first sighting")
	assert.True(t, f.TestAndAdd("abcd"), "second sighting")
	assert.True(t, f.Test("abcd"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("hash1")
	f.Add("hash2")
	f.Add("hash3")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				f.TestAndAdd(fmt.Sprintf("hash-%d-%d", i, j))
			}
		}()
	}
	wg.Wait()

	assert.True(t, f.Test("hash-0-0"))
	assert.True(t, f.Test("hash-7-49"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("added-%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("notadded-%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
