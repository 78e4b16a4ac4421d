package benchmark_test

import (
	"testing"

	"github.com/hupe1980/vecshard"
)

// Baseline: splitting a slice the conventional way copies the tail into a
// second allocation, O(n).
func BenchmarkSplit_Slice(b *testing.B) {
	runSizes(b, func(b *testing.B, size int) {
		src := fixture(size)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			right := append([]byte(nil), src[size/2:]...)
			left := src[:size/2]
			_, _ = left, right
		}
	})
}

// Shard splitting stays O(1) regardless of size.
func BenchmarkSplit_Shard(b *testing.B) {
	runSizes(b, func(b *testing.B, size int) {
		src := fixture(size)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			left, right := vecshard.SplitSlice(src, size/2)
			_, _ = left, right
		}
	})
}
