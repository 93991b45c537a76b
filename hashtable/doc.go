// Package hashtable provides a string-keyed hash table built on the keyhash
// hasher.
//
// Go's builtin map does not accept a custom hash function, so this package
// is the integration layer that actually exercises keyhash for its intended
// purpose: every Map draws a fresh random seed at construction, which makes
// bucket placement unpredictable per table and deters engineered-collision
// (hash-flooding) workloads.
//
// The table uses open addressing with linear probing and backward-shift
// deletion, so lookups never chase tombstones. It is not safe for concurrent
// use; wrap it with a lock if needed, the same as the builtin map.
package hashtable
