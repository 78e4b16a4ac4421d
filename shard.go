package vecshard

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"slices"

	"github.com/hupe1980/vecshard/internal/alloc"
)

// Shard is an owned, disjoint range of elements inside a shared backing
// allocation. It behaves mostly like a slice: it can be indexed, mutated,
// iterated and compared. Unlike a slice, a shard co-owns its allocation
// and must be consumed (by split, merge or conversion) or released.
//
// The ranges of any two live shards over the same allocation never
// overlap; split and merge are the only producers of sibling shards and
// preserve this by construction.
type Shard[T any] struct {
	block *alloc.Block[T]
	off   int
	len   int

	opts *options
}

// Wrap takes ownership of s's storage and returns a full-length shard.
// O(1): no elements are copied. The caller must not use s afterwards.
func Wrap[T any](s []T, optFns ...Option) *Shard[T] {
	return wrap(s, applyOptions(optFns))
}

func wrap[T any](s []T, opts *options) *Shard[T] {
	return &Shard[T]{
		block: alloc.NewBlock(s),
		len:   len(s),
		opts:  opts,
	}
}

// Len returns the number of elements in the shard.
func (s *Shard[T]) Len() int {
	return s.len
}

// Items returns the shard's elements as a mutable slice view. The view is
// valid until the shard is consumed or released. Appending to it is not
// part of the contract: the capacity is capped at the shard's own range so
// an append cannot clobber a sibling.
func (s *Shard[T]) Items() []T {
	if s.block == nil {
		panic("vecshard: use of consumed or released shard")
	}
	return s.block.Buf()[s.off : s.off+s.len : s.off+s.len]
}

// At returns the element at index i. Out-of-range indexes panic; that is
// a programmer error, not a runtime condition.
func (s *Shard[T]) At(i int) T {
	return s.Items()[i]
}

// Set stores v at index i. Out-of-range indexes panic.
func (s *Shard[T]) Set(i int, v T) {
	s.Items()[i] = v
}

// Clone returns a deep copy of the shard backed by a fresh allocation.
// This is the one unavoidably O(n) operation: a shard cannot express "two
// unrelated ranges share an allocation", so the elements must be copied.
func (s *Shard[T]) Clone() *Shard[T] {
	c := wrap(slices.Clone(s.Items()), s.opts)
	s.opts.metricsCollector.RecordClone(s.len)
	return c
}

// Release destroys every element in the shard's range and gives up its
// co-ownership of the backing allocation. The allocation itself is only
// reclaimed once the last co-owner releases. Release is a no-op on a
// shard that was already consumed or released.
func (s *Shard[T]) Release() {
	if s.block == nil {
		return
	}
	clear(s.block.Buf()[s.off : s.off+s.len])
	s.block.Release()
	s.block = nil
	s.off, s.len = 0, 0
}

// take moves the raw parts out of the shard, leaving it consumed.
// The caller inherits the shard's reference on the block.
func (s *Shard[T]) take() (*alloc.Block[T], int, int) {
	if s.block == nil {
		panic("vecshard: use of consumed or released shard")
	}
	block, off, n := s.block, s.off, s.len
	s.block = nil
	s.off, s.len = 0, 0
	return block, off, n
}

// String formats the shard like the equivalent slice, e.g. "[1 3 1 2]".
func (s *Shard[T]) String() string {
	return fmt.Sprintf("%v", s.Items())
}

// Equal reports whether two shards hold equal elements in equal order.
func Equal[T comparable](a, b *Shard[T]) bool {
	return slices.Equal(a.Items(), b.Items())
}

// Compare orders two shards lexicographically, element by element.
func Compare[T cmp.Ordered](a, b *Shard[T]) int {
	return slices.Compare(a.Items(), b.Items())
}

// Hash hashes the shard's elements with the given seed. Shards with equal
// contents hash identically, independent of how their allocations are laid
// out.
func Hash[T comparable](seed maphash.Seed, s *Shard[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, v := range s.Items() {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}
