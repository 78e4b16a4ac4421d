package vecshard

import "fmt"

// SplitAt carves the shard into two adjacent shards at index at: the left
// shard keeps the original start with length at, the right shard starts at
// elements further in and holds the rest. O(1): no element moves, no new
// allocation, just one more co-owner on the backing block.
//
// The receiver is consumed. Panics if at is out of range; a bad split
// point is a programmer error.
func (s *Shard[T]) SplitAt(at int) (*Shard[T], *Shard[T]) {
	if at < 0 || at > s.len {
		panic(fmt.Sprintf("vecshard: split index %d out of range [0:%d]", at, s.len))
	}

	opts := s.opts
	block, off, n := s.take()
	block.Retain()

	left := &Shard[T]{block: block, off: off, len: at, opts: opts}
	right := &Shard[T]{block: block, off: off + at, len: n - at, opts: opts}

	opts.logger.LogSplit(at, left.len, right.len)
	opts.metricsCollector.RecordSplit(n)

	return left, right
}

// SplitSlice wraps s and splits it at the given index in one step.
// See Wrap and Shard.SplitAt.
func SplitSlice[T any](s []T, at int, optFns ...Option) (*Shard[T], *Shard[T]) {
	return Wrap(s, optFns...).SplitAt(at)
}
