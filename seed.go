package keyhash

import (
	crand "crypto/rand"
	"sync"

	"github.com/hupe1980/keyhash/internal/leconv"
)

// Seed is an opaque pair of 64-bit keys. Hashers constructed from the same
// Seed produce identical digests for identical input sequences; hashers with
// different seeds diverge with overwhelming probability.
type Seed struct {
	key0 uint64
	key1 uint64
}

// MakeSeed returns a fresh random Seed drawn from crypto/rand. Use one Seed
// per hash table so probe sequences differ between tables.
func MakeSeed() Seed {
	var buf [16]byte
	// crypto/rand.Read never returns an error on supported platforms; a
	// failure here means the process has no usable randomness at all.
	if _, err := crand.Read(buf[:]); err != nil {
		panic("keyhash: crypto/rand unavailable: " + err.Error())
	}
	lo, hi := leconv.Uint128(buf[:])
	return Seed{key0: lo, key1: hi}
}

// SeedFromKeys returns a Seed with the two provided words. No validation is
// performed; zero or equal keys weaken the keying but are accepted.
func SeedFromKeys(key0, key1 uint64) Seed {
	return Seed{key0: key0, key1: key1}
}

// defaultSeed yields the process-wide key pair behind New. It is fixed on
// first use for the lifetime of the process, so all default-constructed
// hashers in one run agree, and runs differ from each other.
var defaultSeed = sync.OnceValue(MakeSeed)
