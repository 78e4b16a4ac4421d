package benchmark_test

import (
	"testing"

	"github.com/hupe1980/vecshard"
)

func BenchmarkIndex_Slice(b *testing.B) {
	runSizes(b, func(b *testing.B, size int) {
		src := fixture(size)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sink = src[size/2]
		}
	})
}

func BenchmarkIndex_Shard(b *testing.B) {
	runSizes(b, func(b *testing.B, size int) {
		shard := vecshard.Wrap(fixture(size))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sink = shard.At(size / 2)
		}
	})
}
