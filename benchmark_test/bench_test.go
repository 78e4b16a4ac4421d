// Package benchmark_test measures shard operations against plain slice
// baselines.
//
// Each operation (split, index, merge, iterate) has a slice variant doing
// the equivalent work with ordinary Go slices, so the results show what
// sharing the backing allocation buys and what it costs.
package benchmark_test

import (
	"strconv"
	"testing"

	"github.com/hupe1980/vecshard/testutil"
)

var sizes = []int{0x10, 0x100, 0x1000, 0x10000, 0x100000}

// sink defeats dead-code elimination in the index/iterate benchmarks.
var sink byte

func runSizes(b *testing.B, fn func(b *testing.B, size int)) {
	b.Helper()
	for _, size := range sizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			fn(b, size)
		})
	}
}

func fixture(size int) []byte {
	return testutil.NewRNG(1).ByteSlice(size)
}
