package vecshard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCodec is returned when a serialized frame names a codec
	// that is not registered.
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrUnknownCompressor is returned when a serialized frame names a
	// compressor that is not registered.
	ErrUnknownCompressor = errors.New("unknown compressor")
	// ErrCorruptFrame is returned when a serialized frame is truncated or
	// otherwise malformed.
	ErrCorruptFrame = errors.New("corrupt frame")
)

// MoveReason classifies why an in-place merge failed: completing the merge
// would have required moving elements, or is impossible without a new
// allocation.
type MoveReason uint8

const (
	// MoveDifferentAllocations: the shards come from different backing
	// allocations.
	MoveDifferentAllocations MoveReason = iota
	// MoveWrongOrder: the shards are adjacent, but right sits at the lower
	// address; merging in place would reverse the element order.
	MoveWrongOrder
	// MoveNotAdjacent: same allocation, but the ranges do not touch in
	// either direction.
	MoveNotAdjacent
)

func (r MoveReason) String() string {
	switch r {
	case MoveDifferentAllocations:
		return "different allocations"
	case MoveWrongOrder:
		return "wrong order"
	case MoveNotAdjacent:
		return "not adjacent"
	default:
		return "unknown"
	}
}

// AllocReason classifies why a no-allocation merge failed: completing the
// merge would have required a new allocation.
type AllocReason uint8

const (
	// AllocDifferentAllocations: the shards come from different backing
	// allocations; no amount of moving can join them.
	AllocDifferentAllocations AllocReason = iota
	// AllocOtherShardsLeft: other shards still co-own the allocation, so
	// the space between the ranges may belong to a third party.
	AllocOtherShardsLeft
)

func (r AllocReason) String() string {
	switch r {
	case AllocDifferentAllocations:
		return "different allocations"
	case AllocOtherShardsLeft:
		return "other shards left"
	default:
		return "unknown"
	}
}

// MergeInplaceError is returned when MergeInplace cannot combine its
// inputs. Left and Right carry the shards back unchanged, so a failed
// attempt loses nothing.
type MergeInplaceError[T any] struct {
	Left   *Shard[T]
	Right  *Shard[T]
	Reason MoveReason
}

func (e *MergeInplaceError[T]) Error() string {
	return fmt.Sprintf("cannot merge in place: %s", e.Reason)
}

// MergeNoAllocError is returned when MergeNoAlloc cannot combine its
// inputs without allocating. Left and Right carry the shards back
// unchanged.
type MergeNoAllocError[T any] struct {
	Left   *Shard[T]
	Right  *Shard[T]
	Reason AllocReason
}

func (e *MergeNoAllocError[T]) Error() string {
	return fmt.Sprintf("cannot merge without allocating: %s", e.Reason)
}
