// Package sliceutil provides small in-place slice algorithms for the
// merge engine.
package sliceutil

import "slices"

// RotateLeft rotates s in place by k positions, so that s[k] ends up at
// index 0. Implemented as three reversals: O(len(s)) element moves, no
// allocation.
func RotateLeft[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}
