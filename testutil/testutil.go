package testutil

import (
	"fmt"
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
		rand: rand.New(rand.NewSource(seed)),
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

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FillBytes fills dst with pseudo-random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(r.rand.Intn(256))
	}
}

// Bytes returns a new pseudo-random byte slice of length n.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.FillBytes(b)
	return b
}

// Keys returns n distinct byte-slice keys with random lengths in
// [minLen, maxLen]. Distinctness comes from a numbered prefix, so the keys
// are valid hash-table inputs regardless of the random tail.
func (r *RNG) Keys(n, minLen, maxLen int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		prefix := fmt.Appendf(nil, "%d:", i)
		tail := r.Bytes(minLen + r.Intn(maxLen-minLen+1))
		keys[i] = append(prefix, tail...)
	}
	return keys
}

// BucketCounts distributes digests into the given number of buckets by their
// low bits and returns the per-bucket counts. buckets must be a power of two.
func BucketCounts(digests []uint64, buckets int) []int {
	if buckets <= 0 || buckets&(buckets-1) != 0 {
		panic("testutil: buckets must be a power of two")
	}
	counts := make([]int, buckets)
	mask := uint64(buckets - 1)
	for _, d := range digests {
		counts[d&mask]++
	}
	return counts
}
