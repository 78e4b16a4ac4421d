package vecshard

import "iter"

// Next removes and returns the front element, shrinking the shard's range
// by one. The second result is false once the shard is exhausted.
//
// Draining is destructive: a consumed element is gone from the shard. Use
// Items or At for repeated, non-consuming access.
func (s *Shard[T]) Next() (T, bool) {
	var zero T
	if s.block == nil || s.len == 0 {
		return zero, false
	}
	buf := s.block.Buf()
	v := buf[s.off]
	buf[s.off] = zero
	s.off++
	s.len--
	return v, true
}

// NextBack removes and returns the back element, shrinking the shard's
// range by one. The second result is false once the shard is exhausted.
func (s *Shard[T]) NextBack() (T, bool) {
	var zero T
	if s.block == nil || s.len == 0 {
		return zero, false
	}
	buf := s.block.Buf()
	s.len--
	v := buf[s.off+s.len]
	buf[s.off+s.len] = zero
	return v, true
}

// Remaining reports how many elements draining can still produce. It is
// always equal to Len: draining and the shard's range shrink together.
func (s *Shard[T]) Remaining() int {
	return s.len
}

// Drain returns a one-shot iterator that empties the shard from the front.
// Breaking out of the loop leaves the undrained tail in the shard; the
// shard still has to be released (or drained further) afterwards.
func (s *Shard[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// DrainBack returns a one-shot iterator that empties the shard from the
// back.
func (s *Shard[T]) DrainBack() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
