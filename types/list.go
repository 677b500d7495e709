package types

import "github.com/cockroachdb/errors"

// List is a doubly linked list whose iterators stay valid across
// insertions and removals of unrelated elements.
//
// Nodes live in a growable slot array; links between nodes are slot
// indices, not pointers, so the structure holds no reference cycles and
// erasing a node never moves another one. Slot 0 and slot 1 are the
// permanent head and tail sentinels. Every slot carries a generation
// counter that is bumped when the slot is freed, which turns "is this
// iterator stale" into a single comparison even after the slot has been
// reused for a new node.
type List[T any] struct {
	slots []slot[T]
	free  []int // indices of released slots, reused by alloc
}

type slot[T any] struct {
	value T
	prev  int
	next  int
	gen   uint64
	live  bool
}

const (
	headSlot = 0
	tailSlot = 1
	noSlot   = -1
)

// NewList builds a list holding items in the given order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{slots: make([]slot[T], 2, len(items)+2)}
	l.slots[headSlot] = slot[T]{prev: noSlot, next: tailSlot, live: true}
	l.slots[tailSlot] = slot[T]{prev: headSlot, next: noSlot, live: true}
	l.PushBack(items...)
	return l
}

// PushBack appends each item, in order, at the end of the list.
func (l *List[T]) PushBack(items ...T) {
	for _, v := range items {
		l.insertBetween(v, l.slots[tailSlot].prev, tailSlot)
	}
}

// PushFront prepends the items; the first argument ends up first in the list.
func (l *List[T]) PushFront(items ...T) {
	at := headSlot
	for _, v := range items {
		at = l.insertBetween(v, at, l.slots[at].next)
	}
}

// PopBack removes and returns the last item.
func (l *List[T]) PopBack() (T, error) {
	return l.pop(l.slots[tailSlot].prev)
}

// PopFront removes and returns the first item.
func (l *List[T]) PopFront() (T, error) {
	return l.pop(l.slots[headSlot].next)
}

// Front returns the first item without removing it.
func (l *List[T]) Front() (T, error) {
	return l.peek(l.slots[headSlot].next)
}

// Back returns the last item without removing it.
func (l *List[T]) Back() (T, error) {
	return l.peek(l.slots[tailSlot].prev)
}

// IsEmpty is O(1).
func (l *List[T]) IsEmpty() bool {
	return l.slots[headSlot].next == tailSlot
}

// Len counts the value nodes by traversal; it is O(n), unlike IsEmpty.
func (l *List[T]) Len() int {
	n := 0
	for idx := l.slots[headSlot].next; idx != tailSlot; idx = l.slots[idx].next {
		n++
	}
	return n
}

// ToSlice returns the items in list order without mutating the list.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, len(l.slots)-2-len(l.free))
	for idx := l.slots[headSlot].next; idx != tailSlot; idx = l.slots[idx].next {
		out = append(out, l.slots[idx].value)
	}
	return out
}

// Begin returns an iterator to the first value node, or End when the list
// is empty.
func (l *List[T]) Begin() Iterator[T] {
	return l.at(l.slots[headSlot].next)
}

// End returns the one-past-the-last position. It never holds a value but
// is always a valid iterator target, even on an empty list.
func (l *List[T]) End() Iterator[T] {
	return l.at(tailSlot)
}

// Erase unlinks the node it references and returns an iterator to the node
// that followed it, which is End when the erased node was last. The passed
// iterator, and any other iterator to the same node, is invalid afterwards.
// Sentinels cannot be erased.
func (l *List[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.list != l {
		return Iterator[T]{}, errors.Wrap(ErrInvalidIterator, "iterator belongs to a different list")
	}
	if err := it.validate(); err != nil {
		return Iterator[T]{}, err
	}
	if it.slot == headSlot || it.slot == tailSlot {
		return Iterator[T]{}, errors.Wrap(ErrInvalidIterator, "cannot erase a sentinel")
	}
	next := l.slots[it.slot].next
	l.unlink(it.slot)
	l.release(it.slot)
	return l.at(next), nil
}

// Clear removes every value node in one pass from the front. All
// outstanding iterators to removed nodes become invalid; the list itself
// stays usable.
func (l *List[T]) Clear() {
	for idx := l.slots[headSlot].next; idx != tailSlot; {
		next := l.slots[idx].next
		l.release(idx)
		idx = next
	}
	l.slots[headSlot].next = tailSlot
	l.slots[tailSlot].prev = headSlot
}

func (l *List[T]) at(idx int) Iterator[T] {
	return Iterator[T]{list: l, slot: idx, gen: l.slots[idx].gen}
}

func (l *List[T]) pop(idx int) (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, ErrEmptyList
	}
	v := l.slots[idx].value
	l.unlink(idx)
	l.release(idx)
	return v, nil
}

func (l *List[T]) peek(idx int) (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, ErrEmptyList
	}
	return l.slots[idx].value, nil
}

// insertBetween allocates a slot for v and links it between prev and next,
// which must be adjacent. Returns the new slot's index.
func (l *List[T]) insertBetween(v T, prev, next int) int {
	idx := l.alloc(v)
	l.slots[idx].prev = prev
	l.slots[idx].next = next
	l.slots[prev].next = idx
	l.slots[next].prev = idx
	return idx
}

func (l *List[T]) unlink(idx int) {
	s := l.slots[idx]
	l.slots[s.prev].next = s.next
	l.slots[s.next].prev = s.prev
}

func (l *List[T]) alloc(v T) int {
	if n := len(l.free); n > 0 {
		idx := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[idx].value = v
		l.slots[idx].live = true
		return idx
	}
	l.slots = append(l.slots, slot[T]{value: v, live: true})
	return len(l.slots) - 1
}

// release marks an unlinked slot reusable. The generation bump is what
// invalidates every iterator still referencing the slot.
func (l *List[T]) release(idx int) {
	var zero T
	s := &l.slots[idx]
	s.value = zero
	s.prev = noSlot
	s.next = noSlot
	s.gen++
	s.live = false
	l.free = append(l.free, idx)
}
