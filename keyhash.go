package keyhash

import (
	"io"
	"math/bits"
	"unsafe"

	"github.com/hupe1980/keyhash/internal/leconv"
)

// multiple is pulled from a 64-bit linear congruential generator. It is odd
// and disperses bits well under multiplication, which is what the compression
// function relies on.
const multiple uint64 = 6364136223846793005

// Compile-time interface assertion.
var _ io.Writer = (*Hasher)(nil)

// mix is the single compression primitive behind every absorption step and
// the finalizer: multiply, rotate left by 17, xor the key, multiply again.
func mix(data, key uint64) uint64 {
	return (bits.RotateLeft64(data*multiple, 17) ^ key) * multiple
}

// Hasher is keyed hashing state being updated as data is absorbed.
//
// The zero value is usable but unkeyed (both words zero); prefer New,
// NewSeeded or NewWithKeys. A Hasher is a plain two-word value: copying one
// produces a fully independent hasher that shares the prefix absorbed so far.
// It must not be mutated concurrently from multiple goroutines, but distinct
// copies need no synchronization between them.
type Hasher struct {
	buffer uint64 // running accumulator, mutated by every absorption
	key    uint64 // immutable after construction
}

// New returns a Hasher keyed with the process-wide default key pair.
//
// All hashers returned by New within one process run produce identical
// digests for identical input sequences. The pair is drawn from crypto/rand
// on first use, so digests differ from run to run.
func New() Hasher {
	return NewSeeded(defaultSeed())
}

// NewWithKeys returns a Hasher keyed with the two provided words. No
// validation is performed: zero or equal keys are accepted, they merely
// weaken the keying.
func NewWithKeys(key0, key1 uint64) Hasher {
	return Hasher{buffer: key0, key: key1}
}

// NewSeeded returns a Hasher keyed with s. Hashers sharing a Seed agree on
// digests.
func NewSeeded(s Seed) Hasher {
	return Hasher{buffer: s.key0, key: s.key1}
}

// WriteUint8 absorbs a single byte-wide value.
func (h *Hasher) WriteUint8(v uint8) {
	h.buffer = mix(h.buffer^uint64(v), h.key)
}

// WriteUint16 absorbs a 16-bit value.
func (h *Hasher) WriteUint16(v uint16) {
	h.buffer = mix(h.buffer^uint64(v), h.key)
}

// WriteUint32 absorbs a 32-bit value.
func (h *Hasher) WriteUint32(v uint32) {
	h.buffer = mix(h.buffer^uint64(v), h.key)
}

// WriteUint64 absorbs a 64-bit value.
func (h *Hasher) WriteUint64(v uint64) {
	h.buffer = mix(h.buffer^v, h.key)
}

// WriteUint absorbs a platform-width unsigned value via the 64-bit rule.
func (h *Hasher) WriteUint(v uint) {
	h.WriteUint64(uint64(v))
}

// WriteUint128 absorbs a 128-bit value given as its two 64-bit halves. The
// low half is absorbed first, then the high half; the order is part of the
// digest contract. Equivalent to two sequential WriteUint64 calls.
func (h *Hasher) WriteUint128(lo, hi uint64) {
	h.buffer = mix(h.buffer^lo, h.key)
	h.buffer = mix(h.buffer^hi, h.key)
}

// Write absorbs an arbitrary-length byte sequence. It always returns
// len(p), nil; the error is only there to satisfy io.Writer.
//
// Write is not equivalent to absorbing the same bytes through repeated
// WriteUint8 calls: full 8-byte chunks go through the compression function,
// the sub-8-byte tail is folded in with cheap xor-and-rotate steps, and the
// total byte length is absorbed last. The length step runs even for empty
// input, so Write(nil) mutates the hasher.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	length := uint64(n)
	for len(p) >= 8 {
		h.buffer = mix(h.buffer^leconv.Uint64(p), h.key)
		p = p[8:]
	}
	if len(p) >= 4 {
		h.buffer = bits.RotateLeft64(h.buffer^uint64(leconv.Uint32(p)), 32)
		p = p[4:]
	}
	if len(p) >= 2 {
		h.buffer = bits.RotateLeft64(h.buffer^uint64(leconv.Uint16(p)), 16)
		p = p[2:]
	}
	if len(p) >= 1 {
		h.buffer = bits.RotateLeft64(h.buffer^uint64(p[0]), 8)
	}
	h.buffer = mix(h.buffer^length, h.key)
	return n, nil
}

// WriteString absorbs the bytes of s exactly as Write would, without
// copying the string.
func (h *Hasher) WriteString(s string) {
	b := unsafe.Slice(unsafe.StringData(s), len(s)) //nolint:gosec // read-only view, never mutated
	_, _ = h.Write(b)
}

// Sum64 returns the current 64-bit digest. It never mutates the hasher, so
// it can be called repeatedly and interleaved with further writes to obtain
// digests of successive prefixes.
func (h Hasher) Sum64() uint64 {
	return mix(h.buffer, h.key)
}

// Sum64Bytes returns the digest of b under seed s.
func Sum64Bytes(s Seed, b []byte) uint64 {
	h := NewSeeded(s)
	_, _ = h.Write(b)
	return h.Sum64()
}

// Sum64String returns the digest of s under seed sd, without copying s.
func Sum64String(sd Seed, s string) uint64 {
	h := NewSeeded(sd)
	h.WriteString(s)
	return h.Sum64()
}
