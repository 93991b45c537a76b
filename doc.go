// Package keyhash implements a fast, keyed, non-cryptographic 64-bit hash
// intended as the default keying primitive for in-memory hash tables.
//
// The hasher is a two-word value type: a running buffer and an immutable key.
// Every absorption step runs through a single multiply/rotate/xor/multiply
// compression function, so small input differences avalanche across the full
// 64-bit digest. Keying makes digests unpredictable to callers that cannot
// observe the key, which deters trivial hash-flooding attacks. It makes no
// cryptographic claims: an adversary who can observe digests and choose
// inputs adaptively is out of scope.
//
// # Quick Start
//
// One-shot hashing with a per-table seed:
//
//	seed := keyhash.MakeSeed()
//	d := keyhash.Sum64Bytes(seed, []byte("hello world"))
//
// Streaming use:
//
//	h := keyhash.New()
//	h.WriteUint32(1989)
//	h.Write([]byte("Huh?"))
//	d := h.Sum64()
//
// # Copy Semantics
//
// A Hasher is a plain value. Copying one branches the computation: both
// copies share the prefix absorbed so far and evolve independently from the
// point of the copy. This makes it cheap to hash a common prefix once and
// fork per-suffix, including across goroutines, with no synchronization
// between the copies.
//
// # Keys
//
// Default-constructed hashers share a process-wide random key pair drawn
// lazily from crypto/rand, so all of them agree on digests within one
// process run and disagree across runs. Digests are therefore in-memory
// values only; never persist them or compare them across processes. Explicit
// keys (NewWithKeys) give reproducible digests for tests and regression
// vectors.
//
// # Incremental Snapshots
//
// Sum64 never mutates the hasher, so it can be called repeatedly and
// interleaved with further writes to obtain digests of successive prefixes
// of the input stream.
//
// Note that Write absorbs the byte length of each call, so one Write of n
// bytes and two Writes covering the same bytes produce different digests.
// Splitting a logical byte stream across Write calls is only reproducible if
// the split points are reproduced too.
package keyhash
