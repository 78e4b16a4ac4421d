package alloc

import (
	"fmt"
	"sync/atomic"
)

// Stats tracks block lifecycle counts across the process.
type Stats struct {
	BlocksAllocated uint64 // Historical: total blocks ever created
	BlocksFreed     uint64 // Historical: total blocks released
	LiveBlocks      int64  // Current: blocks with at least one co-owner
}

type atomicStats struct {
	BlocksAllocated atomic.Uint64
	BlocksFreed     atomic.Uint64
	LiveBlocks      atomic.Int64
}

var stats atomicStats

// ReadStats returns a snapshot of the current block statistics.
func ReadStats() Stats {
	return Stats{
		BlocksAllocated: stats.BlocksAllocated.Load(),
		BlocksFreed:     stats.BlocksFreed.Load(),
		LiveBlocks:      stats.LiveBlocks.Load(),
	}
}

// Block is a single backing allocation co-owned by one or more shards.
//
// Two shards originate from the same allocation exactly when they point at
// the same *Block; identity comparison of the pointers is the handle
// equality the merge engine relies on.
type Block[T any] struct {
	buf  []T
	refs atomic.Int64
}

// NewBlock takes ownership of buf's storage and returns a block with a
// single co-owner. The buffer spans the full capacity of buf.
func NewBlock[T any](buf []T) *Block[T] {
	b := &Block[T]{buf: buf[:cap(buf)]}
	b.refs.Store(1)
	stats.BlocksAllocated.Add(1)
	stats.LiveBlocks.Add(1)
	return b
}

// Retain adds a co-owner.
func (b *Block[T]) Retain() {
	b.refs.Add(1)
}

// Release drops one co-owner. When the count reaches zero the buffer
// reference is dropped so the garbage collector can reclaim it; under a
// collector this is the closest equivalent to freeing the allocation the
// moment the last owner lets go.
func (b *Block[T]) Release() {
	switch n := b.refs.Add(-1); {
	case n == 0:
		b.buf = nil
		stats.BlocksFreed.Add(1)
		stats.LiveBlocks.Add(-1)
	case n < 0:
		panic(fmt.Sprintf("alloc: block released %d more times than retained", -n))
	}
}

// Refs returns the current number of co-owners.
func (b *Block[T]) Refs() int64 {
	return b.refs.Load()
}

// TryUnwrap transfers the buffer to a sole owner. It succeeds only when
// the caller holds the last reference, which is consumed atomically so no
// concurrent Retain/Release can observe a half-released block.
func (b *Block[T]) TryUnwrap() ([]T, bool) {
	if !b.refs.CompareAndSwap(1, 0) {
		return nil, false
	}
	buf := b.buf
	b.buf = nil
	stats.BlocksFreed.Add(1)
	stats.LiveBlocks.Add(-1)
	return buf, true
}

// Buf returns the backing buffer, spanning the allocation's full capacity.
// Only valid while the caller holds a reference.
func (b *Block[T]) Buf() []T {
	return b.buf
}

// Cap returns the element capacity of the backing allocation.
func (b *Block[T]) Cap() int {
	return cap(b.buf)
}

func (b *Block[T]) String() string {
	return fmt.Sprintf("Block{cap: %d, refs: %d}", cap(b.buf), b.refs.Load())
}
