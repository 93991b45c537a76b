package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/keyhash"
)

func TestMapBasics(t *testing.T) {
	m := NewMap[int](0)

	_, ok := m.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	m.Set("a", 1)
	m.Set("b", 2)
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	m.Set("a", 10)
	v, _ = m.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, m.Len())
}

func TestMapDelete(t *testing.T) {
	m := NewMap[string](0)
	m.Set("x", "1")
	m.Set("y", "2")

	assert.True(t, m.Delete("x"))
	assert.False(t, m.Delete("x"))
	assert.Equal(t, 1, m.Len())

	_, ok := m.Get("x")
	assert.False(t, ok)
	v, ok := m.Get("y")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestMapGrowth(t *testing.T) {
	const n = 10_000
	m := NewMap[int](0)

	for i := 0; i < n; i++ {
		m.Set(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, n, m.Len())

	for i := 0; i < n; i++ {
		v, ok := m.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d missing after growth", i)
		require.Equal(t, i, v)
	}
}

func TestMapDeleteShifting(t *testing.T) {
	// A small fixed-seed table forces dense probe chains so deletion has
	// to shift displaced entries back over the hole.
	m := newMapWithSeed[int](keyhash.SeedFromKeys(123, 456), minCapacity)

	keys := []string{"a", "b", "c", "d", "e"}
	for i, k := range keys {
		m.Set(k, i)
	}

	for i, victim := range keys {
		require.True(t, m.Delete(victim))
		for j, k := range keys {
			v, ok := m.Get(k)
			if j <= i {
				assert.False(t, ok, "deleted key %q still present", k)
			} else {
				require.True(t, ok, "key %q lost after deleting %q", k, victim)
				assert.Equal(t, j, v)
			}
		}
	}
	assert.Equal(t, 0, m.Len())
}

func TestMapDeleteShiftsPastHomeSlotEntry(t *testing.T) {
	// Under this seed in a capacity-8 table, "w10" and "w18" share home
	// slot 5 while "w16" sits at its own home slot 6 between them, so
	// "w18" ends up in slot 7. Deleting "w10" must shift "w18" back over
	// the home-positioned "w16"; treating a home-positioned entry as the
	// end of the chain would strand "w18" behind the new hole.
	seed := keyhash.SeedFromKeys(123, 456)
	require.Equal(t, uint64(5), keyhash.Sum64String(seed, "w10")&7)
	require.Equal(t, uint64(6), keyhash.Sum64String(seed, "w16")&7)
	require.Equal(t, uint64(5), keyhash.Sum64String(seed, "w18")&7)

	m := newMapWithSeed[int](seed, minCapacity)
	m.Set("w10", 1)
	m.Set("w16", 2)
	m.Set("w18", 3)

	require.True(t, m.Delete("w10"))
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("w18")
	require.True(t, ok, "chained key lost after delete")
	assert.Equal(t, 3, v)
	v, ok = m.Get("w16")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMapDeleteShiftWrapsAround(t *testing.T) {
	// Same chain shape as above but wrapped across slot 0: "z1" and "z29"
	// share home slot 7, "z16" owns slot 0, so "z29" lands in slot 1 and
	// must be shifted back across the table boundary when "z1" goes.
	seed := keyhash.SeedFromKeys(123, 456)
	require.Equal(t, uint64(7), keyhash.Sum64String(seed, "z1")&7)
	require.Equal(t, uint64(0), keyhash.Sum64String(seed, "z16")&7)
	require.Equal(t, uint64(7), keyhash.Sum64String(seed, "z29")&7)

	m := newMapWithSeed[int](seed, minCapacity)
	m.Set("z1", 1)
	m.Set("z16", 2)
	m.Set("z29", 3)

	require.True(t, m.Delete("z1"))
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("z29")
	require.True(t, ok, "chained key lost after wraparound delete")
	assert.Equal(t, 3, v)
	v, ok = m.Get("z16")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMapDeleteInsertChurn(t *testing.T) {
	m := NewMap[int](16)

	for round := 0; round < 100; round++ {
		for i := 0; i < 50; i++ {
			m.Set(fmt.Sprintf("r%d-k%d", round, i), i)
		}
		for i := 0; i < 50; i += 2 {
			require.True(t, m.Delete(fmt.Sprintf("r%d-k%d", round, i)))
		}
		for i := 1; i < 50; i += 2 {
			v, ok := m.Get(fmt.Sprintf("r%d-k%d", round, i))
			require.True(t, ok)
			require.Equal(t, i, v)
		}
	}
}

func TestMapAll(t *testing.T) {
	m := NewMap[int](0)
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Set(k, v)
	}

	got := make(map[string]int)
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, want, got)

	// Early break terminates cleanly.
	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestMapsAreIndependentlySeeded(t *testing.T) {
	// Two tables with the same contents behave identically through the
	// public API even though their internal placement differs per seed.
	a := NewMap[int](0)
	b := NewMap[int](0)
	for i := 0; i < 100; i++ {
		k := fmt.Sprintf("key-%d", i)
		a.Set(k, i)
		b.Set(k, i)
	}
	for i := 0; i < 100; i++ {
		k := fmt.Sprintf("key-%d", i)
		av, aok := a.Get(k)
		bv, bok := b.Get(k)
		require.True(t, aok)
		require.True(t, bok)
		require.Equal(t, av, bv)
	}
	assert.NotEqual(t, a.seed, b.seed)
}

func BenchmarkMapSet(b *testing.B) {
	b.ReportAllocs()
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	m := NewMap[int](len(keys))

	i := 0
	for b.Loop() {
		m.Set(keys[i&1023], i)
		i++
	}
}

func BenchmarkMapGet(b *testing.B) {
	b.ReportAllocs()
	keys := make([]string, 1024)
	m := NewMap[int](len(keys))
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		m.Set(keys[i], i)
	}

	b.ResetTimer()
	i := 0
	for b.Loop() {
		_, _ = m.Get(keys[i&1023])
		i++
	}
}
