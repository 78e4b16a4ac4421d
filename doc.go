// Package vecshard splits slices into independently owned shards in O(1) time.
//
// Splitting a slice with append-and-copy takes linear time, and plain
// subslicing only yields borrowed views. Vecshard instead shares one backing
// allocation between several owners: each Shard owns a disjoint range of
// elements, and the allocation itself is released when the last shard lets go.
//
// # Quick Start
//
//	animals := []string{"penguin", "owl", "toucan", "turtle", "spider"}
//
//	left, right := vecshard.SplitSlice(animals, 4)
//
//	// shards index like slices
//	_ = left.At(3)      // "turtle"
//	_ = right.At(0)     // "spider"
//
//	// and can be split again
//	birds, reptiles := left.SplitAt(3)
//
//	// merging reuses the original allocation whenever geometry permits
//	merged := vecshard.Merge(birds, reptiles)
//	_ = merged.IntoSlice()
//
// # Merge Tiers
//
// Merging escalates through three strategies, each trying harder:
//
//	// 1. IN-PLACE — O(1), same allocation and already adjacent.
//	merged, err := vecshard.MergeInplace(left, right)
//
//	// 2. NO-ALLOCATION — O(n) moves inside the existing allocation,
//	//    possible when the two shards are its only remaining owners.
//	merged, err := vecshard.MergeNoAlloc(left, right)
//
//	// 3. TOTAL — never fails, falls back to a fresh allocation.
//	merged := vecshard.Merge(left, right)
//
// Failed tiers hand both inputs back unchanged inside the error, so nothing
// is lost by trying the cheap path first.
//
// # Ownership
//
// Split and merge consume their input shards. A shard that is no longer
// needed must be released with Release, which destroys its elements and
// drops its co-ownership of the backing allocation. Shards may be moved
// across goroutines; the reference count is atomic, and disjoint ranges
// make concurrent mutation of sibling shards safe. Concurrent merge
// attempts over shards of one allocation must be serialized by the caller.
//
// # Key Features
//
//   - O(1) split, three-tier merge with allocation reuse
//   - Draining iteration from both ends (Next/NextBack/Drain)
//   - Conversion back to a plain slice, reusing memory for sole owners
//   - Length-prefixed serialization with pluggable codecs and compressors
//   - Structured logging (slog) and pluggable metrics collection
package vecshard
