package hashtable

import (
	"iter"

	"github.com/hupe1980/keyhash"
)

const (
	minCapacity = 8
	// maxLoadNum/maxLoadDen is the load factor threshold for growth.
	maxLoadNum = 3
	maxLoadDen = 4
)

type slot[V any] struct {
	hash  uint64
	key   string
	value V
	used  bool
}

// Map is a string-keyed hash table with per-table random keying. The zero
// value is not usable; construct with NewMap.
type Map[V any] struct {
	seed  keyhash.Seed
	slots []slot[V]
	mask  uint64
	size  int
}

// NewMap returns an empty Map sized for at least hint entries. Each Map gets
// its own random seed, so slot placement differs between tables even for
// identical key sets.
func NewMap[V any](hint int) *Map[V] {
	capacity := minCapacity
	for capacity*maxLoadNum < hint*maxLoadDen {
		capacity *= 2
	}
	return newMapWithSeed[V](keyhash.MakeSeed(), capacity)
}

func newMapWithSeed[V any](seed keyhash.Seed, capacity int) *Map[V] {
	if capacity < minCapacity || capacity&(capacity-1) != 0 {
		panic("hashtable: capacity must be a power of two >= 8")
	}
	return &Map[V]{
		seed:  seed,
		slots: make([]slot[V], capacity),
		mask:  uint64(capacity - 1),
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.size
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	hash := keyhash.Sum64String(m.seed, key)
	if i, ok := m.find(hash, key); ok {
		return m.slots[i].value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key, replacing any previous value.
func (m *Map[V]) Set(key string, value V) {
	if (m.size+1)*maxLoadDen > len(m.slots)*maxLoadNum {
		m.grow()
	}
	hash := keyhash.Sum64String(m.seed, key)
	i := hash & m.mask
	for m.slots[i].used {
		if m.slots[i].hash == hash && m.slots[i].key == key {
			m.slots[i].value = value
			return
		}
		i = (i + 1) & m.mask
	}
	m.slots[i] = slot[V]{hash: hash, key: key, value: value, used: true}
	m.size++
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	hash := keyhash.Sum64String(m.seed, key)
	i, ok := m.find(hash, key)
	if !ok {
		return false
	}
	// Backward-shift deletion: walk the probe chain up to the next empty
	// slot and pull every entry whose home lies cyclically outside
	// (hole, j] back into the hole, so no lookup path crosses an empty
	// slot. Entries sitting between the hole and their own home stay put;
	// in particular a home-positioned entry is skipped, not a terminator.
	j := i
	for {
		j = (j + 1) & m.mask
		if !m.slots[j].used {
			break
		}
		home := m.slots[j].hash & m.mask
		if (j-home)&m.mask >= (j-i)&m.mask {
			m.slots[i] = m.slots[j]
			i = j
		}
	}
	m.slots[i] = slot[V]{}
	m.size--
	return true
}

// All returns an iterator over all entries in unspecified order. The Map
// must not be modified during iteration.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range m.slots {
			if m.slots[i].used && !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// find locates the slot holding key, probing from its home slot.
func (m *Map[V]) find(hash uint64, key string) (uint64, bool) {
	i := hash & m.mask
	for m.slots[i].used {
		if m.slots[i].hash == hash && m.slots[i].key == key {
			return i, true
		}
		i = (i + 1) & m.mask
	}
	return 0, false
}

// grow doubles the table and reinserts every entry. Stored hashes are
// reused; the seed never changes after construction.
func (m *Map[V]) grow() {
	old := m.slots
	m.slots = make([]slot[V], len(old)*2)
	m.mask = uint64(len(m.slots) - 1)
	for i := range old {
		if !old[i].used {
			continue
		}
		j := old[i].hash & m.mask
		for m.slots[j].used {
			j = (j + 1) & m.mask
		}
		m.slots[j] = old[i]
	}
}
