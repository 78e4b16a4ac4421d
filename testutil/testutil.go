package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// IntSlice generates a slice of n pseudo-random ints.
func (r *RNG) IntSlice(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make([]int, n)
	for i := range s {
		s[i] = r.rand.Int()
	}
	return s
}

// ByteSlice generates a slice of n pseudo-random bytes.
func (r *RNG) ByteSlice(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make([]byte, n)
	r.rand.Read(s) // nolint errcheck
	return s
}

const letters = "abcdefghijklmnopqrstuvwxyz"

// StringSlice generates n pseudo-random lowercase strings of the given
// length.
func (r *RNG) StringSlice(n, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make([]string, n)
	buf := make([]byte, length)
	for i := range s {
		for j := range buf {
			buf[j] = letters[r.rand.Intn(len(letters))]
		}
		s[i] = string(buf)
	}
	return s
}
