package types

// Entry is one key/value pair of an OrderedMap, stored in its list.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a map that remembers insertion order. Each key's map entry
// holds a stable iterator into the entry list, so deleting a key is O(1)
// and never disturbs the iterators held for the other keys.
type OrderedMap[K comparable, V any] struct {
	kv map[K]Iterator[Entry[K, V]]
	ll *List[Entry[K, V]]
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		kv: make(map[K]Iterator[Entry[K, V]]),
		ll: NewList[Entry[K, V]](),
	}
}

func (m *OrderedMap[K, V]) Get(key K) (value V, ok bool) {
	it, ok := m.kv[key]
	if !ok {
		return value, false
	}
	entry, err := it.Value()
	if err != nil {
		return value, false
	}
	return entry.Value, true
}

// Set inserts the pair, or updates the value in place when the key already
// exists, keeping its original position. Reports whether a new entry was
// created.
func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	if it, ok := m.kv[key]; ok {
		_ = it.SetValue(Entry[K, V]{Key: key, Value: value})
		return false
	}

	m.ll.PushBack(Entry[K, V]{Key: key, Value: value})
	it, _ := m.ll.End().Previous()
	m.kv[key] = it
	return true
}

// Len is O(1), unlike the underlying list's Len.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.kv)
}

func (m *OrderedMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, m.Len())
	for _, entry := range m.ll.ToSlice() {
		keys = append(keys, entry.Key)
	}

	return
}

func (m *OrderedMap[K, V]) Values() (values []V) {
	values = make([]V, 0, m.Len())
	for _, entry := range m.ll.ToSlice() {
		values = append(values, entry.Value)
	}

	return
}

func (m *OrderedMap[K, V]) Delete(key K) (didDelete bool) {
	it, ok := m.kv[key]
	if ok {
		_, _ = m.ll.Erase(it)
		delete(m.kv, key)
	}

	return ok
}
