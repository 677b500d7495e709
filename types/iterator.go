package types

import "github.com/cockroachdb/errors"

// Iterator is a stable cursor over one node of a List: a slot index plus
// the generation the slot had when the iterator was minted. It stays valid
// while its node is linked, no matter what happens elsewhere in the list,
// and becomes detectably invalid the moment the node is erased. The zero
// Iterator is invalid.
//
// Iterators are values; copying one is cheap and copies share validity.
type Iterator[T any] struct {
	list *List[T]
	slot int
	gen  uint64
}

// Valid reports whether the iterator still references a linked node or a
// sentinel of its list.
func (it Iterator[T]) Valid() bool {
	return it.validate() == nil
}

// Value returns the referenced node's item. Sentinel positions (End, or
// Begin on an empty list) hold no value.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	if err := it.validate(); err != nil {
		return zero, err
	}
	if it.slot == headSlot || it.slot == tailSlot {
		return zero, errors.Wrap(ErrInvalidIterator, "sentinel holds no value")
	}
	return it.list.slots[it.slot].value, nil
}

// SetValue replaces the referenced node's item in place.
func (it Iterator[T]) SetValue(v T) error {
	if err := it.validate(); err != nil {
		return err
	}
	if it.slot == headSlot || it.slot == tailSlot {
		return errors.Wrap(ErrInvalidIterator, "sentinel holds no value")
	}
	it.list.slots[it.slot].value = v
	return nil
}

// Next returns an iterator to the following node. Moving past the end
// position is an error.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if err := it.validate(); err != nil {
		return Iterator[T]{}, err
	}
	if it.slot == tailSlot {
		return Iterator[T]{}, errors.Wrap(ErrInvalidIterator, "cannot move past the end")
	}
	return it.list.at(it.list.slots[it.slot].next), nil
}

// Previous returns an iterator to the preceding node. Landing on the head
// sentinel is allowed; moving before it is an error.
func (it Iterator[T]) Previous() (Iterator[T], error) {
	if err := it.validate(); err != nil {
		return Iterator[T]{}, err
	}
	if it.slot == headSlot {
		return Iterator[T]{}, errors.Wrap(ErrInvalidIterator, "cannot move before the head")
	}
	return it.list.at(it.list.slots[it.slot].prev), nil
}

// InsertAfter splices the items immediately after the referenced node, in
// the given order. The node's identity and every other iterator are
// unaffected. Inserting after the end position is an error.
func (it Iterator[T]) InsertAfter(items ...T) error {
	if err := it.validate(); err != nil {
		return err
	}
	if it.slot == tailSlot {
		return errors.Wrap(ErrInvalidIterator, "cannot insert after the end")
	}
	at := it.slot
	for _, v := range items {
		at = it.list.insertBetween(v, at, it.list.slots[at].next)
	}
	return nil
}

// InsertBefore splices the items immediately before the referenced node,
// in the given order. Inserting before the head sentinel is an error.
func (it Iterator[T]) InsertBefore(items ...T) error {
	if err := it.validate(); err != nil {
		return err
	}
	if it.slot == headSlot {
		return errors.Wrap(ErrInvalidIterator, "cannot insert before the head")
	}
	for _, v := range items {
		it.list.insertBetween(v, it.list.slots[it.slot].prev, it.slot)
	}
	return nil
}

// Equal reports whether both iterators reference the same node of the same
// list. Iterators from different lists are never equal, and a stale
// iterator is not equal to a live one at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.list != nil &&
		it.list == other.list &&
		it.slot == other.slot &&
		it.gen == other.gen
}

// validate is the one staleness check: the slot must still be on the
// generation this iterator was minted against, and must be linked.
func (it Iterator[T]) validate() error {
	if it.list == nil {
		return errors.Wrap(ErrInvalidIterator, "iterator is not attached to a list")
	}
	s := it.list.slots[it.slot]
	if !s.live || s.gen != it.gen {
		return errors.Wrap(ErrInvalidIterator, "node has been erased")
	}
	return nil
}
