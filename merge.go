package vecshard

import (
	"github.com/hupe1980/vecshard/internal/sliceutil"
)

// MergeTier identifies which strategy completed (or was attempted for) a
// merge.
type MergeTier uint8

const (
	// TierInplace is the O(1) merge of two already-adjacent shards.
	TierInplace MergeTier = iota
	// TierNoAlloc moves elements within the existing allocation.
	TierNoAlloc
	// TierAlloc copies both ranges into a fresh allocation.
	TierAlloc
)

func (t MergeTier) String() string {
	switch t {
	case TierInplace:
		return "inplace"
	case TierNoAlloc:
		return "noalloc"
	case TierAlloc:
		return "alloc"
	default:
		return "unknown"
	}
}

// MergeInplace combines two adjacent shards from the same allocation into
// one shard covering left's elements followed by right's. O(1): the result
// reuses left's handle and right's handle is discarded; no element moves.
//
// On failure both shards are returned unchanged inside a
// *MergeInplaceError. The failure reasons are mutually exclusive and
// decided in order: different allocations, then wrong order (adjacent but
// right sits below left), then not adjacent.
func MergeInplace[T any](left, right *Shard[T]) (*Shard[T], error) {
	if left.block == nil || right.block == nil {
		panic("vecshard: use of consumed or released shard")
	}

	opts := left.opts

	switch {
	case left.block != right.block:
		return nil, &MergeInplaceError[T]{Left: left, Right: right, Reason: MoveDifferentAllocations}
	case left.off+left.len == right.off:
		block, off, llen := left.take()
		rb, _, rlen := right.take()
		rb.Release()

		merged := &Shard[T]{block: block, off: off, len: llen + rlen, opts: opts}
		opts.logger.LogMerge(TierInplace, merged.len, nil)
		opts.metricsCollector.RecordMerge(TierInplace, merged.len)
		return merged, nil
	case right.off+right.len == left.off:
		return nil, &MergeInplaceError[T]{Left: left, Right: right, Reason: MoveWrongOrder}
	default:
		return nil, &MergeInplaceError[T]{Left: left, Right: right, Reason: MoveNotAdjacent}
	}
}

// MergeNoAlloc combines two shards from the same allocation without
// requesting new memory. It first tries MergeInplace; failing that it
// moves elements around inside the existing allocation, which is safe
// either when the shards are adjacent in the wrong order (a rotation
// fixes them up) or when they are the allocation's only two remaining
// co-owners (the gaps belong to nobody). O(n) element moves at worst.
//
// On failure both shards are returned unchanged inside a
// *MergeNoAllocError.
func MergeNoAlloc[T any](left, right *Shard[T]) (*Shard[T], error) {
	merged, err := MergeInplace(left, right)
	if err == nil {
		return merged, nil
	}
	ierr := err.(*MergeInplaceError[T])
	left, right = ierr.Left, ierr.Right
	opts := left.opts

	if ierr.Reason == MoveDifferentAllocations {
		return nil, &MergeNoAllocError[T]{Left: left, Right: right, Reason: AllocDifferentAllocations}
	}

	if ierr.Reason == MoveWrongOrder {
		// Right sits immediately below left: one rotation of the combined
		// range restores left-then-right order.
		block, _, llen := left.take()
		_, roff, rlen := right.take()
		block.Release()

		sliceutil.RotateLeft(block.Buf()[roff:roff+rlen+llen], rlen)

		merged := &Shard[T]{block: block, off: roff, len: llen + rlen, opts: opts}
		opts.logger.LogMerge(TierNoAlloc, merged.len, nil)
		opts.metricsCollector.RecordMerge(TierNoAlloc, merged.len)
		return merged, nil
	}

	// Not adjacent. Relocating elements is only safe when left and right
	// are the allocation's last two co-owners; otherwise the gap may be a
	// third shard's range.
	if left.block.Refs() != 2 {
		return nil, &MergeNoAllocError[T]{Left: left, Right: right, Reason: AllocOtherShardsLeft}
	}

	block, loff, llen := left.take()
	_, roff, rlen := right.take()
	block.Release()
	buf := block.Buf()

	var off int
	switch {
	case roff < loff && llen < rlen:
		// Right sits below left and is the longer range: copy left up
		// against right's end, then rotate the pair into order. Moves
		// llen + (llen+rlen) elements.
		//
		//  ...  |---------- r ----------| ... |--- l ---|
		//  ...  |---------- r ----------|--- l ---|  ...
		//  ...  |--- l ---|---------- r ----------|  ...
		copy(buf[roff+rlen:roff+rlen+llen], buf[loff:loff+llen])
		sliceutil.RotateLeft(buf[roff:roff+rlen+llen], rlen)
		off = roff
	case roff < loff:
		// Right sits below left and is the shorter range: copy right down
		// against left's start, then rotate. Moves rlen + (llen+rlen)
		// elements.
		//
		//  ...  |--- r ---| ... |---------- l ----------|
		//  ...   ...  |--- r ---|---------- l ----------|
		//  ...   ...  |---------- l ----------|--- r ---|
		copy(buf[loff-rlen:loff], buf[roff:roff+rlen])
		sliceutil.RotateLeft(buf[loff-rlen:loff+llen], rlen)
		off = loff - rlen
	default:
		// Left is already at the lower address: scootch right over so it
		// follows left directly.
		//
		//  ...  |---------- l ----------|  ...  |--- r ---|
		//  ...  |---------- l ----------|--- r ---|  ...
		copy(buf[loff+llen:loff+llen+rlen], buf[roff:roff+rlen])
		off = loff
	}

	merged = &Shard[T]{block: block, off: off, len: llen + rlen, opts: opts}

	// The moves above leave stale copies behind in the vacated parts of
	// the old ranges; zero them so the collector does not keep those
	// elements alive through slots nobody owns.
	clearOutside(buf, loff, loff+llen, off, off+merged.len)
	clearOutside(buf, roff, roff+rlen, off, off+merged.len)

	opts.logger.LogMerge(TierNoAlloc, merged.len, nil)
	opts.metricsCollector.RecordMerge(TierNoAlloc, merged.len)
	return merged, nil
}

// Merge combines two shards into one covering left's elements followed by
// right's. It tries the cheaper tiers first and falls back to copying both
// ranges into a fresh allocation, so it never fails.
func Merge[T any](left, right *Shard[T]) *Shard[T] {
	merged, err := MergeNoAlloc(left, right)
	if err == nil {
		return merged
	}
	nerr := err.(*MergeNoAllocError[T])
	left, right = nerr.Left, nerr.Right
	opts := left.opts

	buf := make([]T, 0, left.Len()+right.Len())
	buf = append(buf, left.Items()...)
	buf = append(buf, right.Items()...)
	left.Release()
	right.Release()

	merged = wrap(buf, opts)
	opts.logger.LogMerge(TierAlloc, merged.len, nil)
	opts.metricsCollector.RecordMerge(TierAlloc, merged.len)
	return merged
}

// clearOutside zeroes the part of [start,end) that falls outside the kept
// range [keepStart,keepEnd).
func clearOutside[T any](buf []T, start, end, keepStart, keepEnd int) {
	if start < keepStart {
		clear(buf[start:min(end, keepStart)])
	}
	if end > keepEnd {
		clear(buf[max(start, keepEnd):end])
	}
}
