package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedMapSetGet(t *testing.T) {
	m := NewOrderedMap[string, int]()

	require.True(t, m.Set("one", 1))
	require.True(t, m.Set("two", 2))
	require.False(t, m.Set("one", 11))

	v, ok := m.Get("one")
	require.True(t, ok)
	require.Equal(t, 11, v)

	_, ok = m.Get("missing")
	require.False(t, ok)

	require.Equal(t, 2, m.Len())
}

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, string]()
	m.Set("c", "3")
	m.Set("a", "1")
	m.Set("b", "2")

	// Updating a key must not move it.
	m.Set("c", "33")

	require.Equal(t, []string{"c", "a", "b"}, m.Keys())
	require.Equal(t, []string{"33", "1", "2"}, m.Values())
}

func TestOrderedMapDelete(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	require.True(t, m.Delete("b"))
	require.False(t, m.Delete("b"))

	require.Equal(t, []string{"a", "c"}, m.Keys())
	require.Equal(t, 2, m.Len())

	// The surviving keys' stored iterators are untouched by the delete.
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = m.Get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestOrderedMapInterleavedSetDelete(t *testing.T) {
	m := NewOrderedMap[int, int]()
	for i := 0; i < 8; i++ {
		m.Set(i, i*i)
	}
	for i := 0; i < 8; i += 2 {
		require.True(t, m.Delete(i))
	}
	// Reinsertions land at the back, in freed list slots.
	m.Set(0, 100)
	m.Set(2, 200)

	require.Equal(t, []int{1, 3, 5, 7, 0, 2}, m.Keys())
	v, ok := m.Get(0)
	require.True(t, ok)
	require.Equal(t, 100, v)
	require.Equal(t, 6, m.Len())
}
