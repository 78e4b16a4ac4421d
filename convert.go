package vecshard

// IntoSlice converts the shard back into a plain slice and consumes it.
//
// If the shard is the sole remaining co-owner of its allocation, the
// allocation is reused: elements not already at the base are moved down
// first (O(n) moves, no allocation) and the buffer is returned directly,
// capacity intact. Otherwise a fresh slice is allocated and the shard's
// range copied out, leaving sibling shards untouched.
func (s *Shard[T]) IntoSlice() []T {
	opts := s.opts
	block, off, n := s.take()

	if buf, ok := block.TryUnwrap(); ok {
		if off != 0 {
			copy(buf, buf[off:off+n])
			// drop the stale copies left above the moved range
			clear(buf[max(off, n) : off+n])
		}
		opts.logger.LogConvert(n, true)
		opts.metricsCollector.RecordConvert(n, true)
		return buf[:n]
	}

	out := make([]T, n)
	copy(out, block.Buf()[off:off+n])
	clear(block.Buf()[off : off+n])
	block.Release()

	opts.logger.LogConvert(n, false)
	opts.metricsCollector.RecordConvert(n, false)
	return out
}
