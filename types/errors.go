package types

import "github.com/cockroachdb/errors"

// Error kinds reported by List and Iterator operations.
// Callers match them with errors.Is.
var (
	// ErrEmptyList is returned by pops and peeks on a list with no value nodes.
	ErrEmptyList = errors.New("list is empty")

	// ErrInvalidIterator is returned when an operation is applied to an
	// iterator whose node has been erased, to an iterator from another list,
	// or to a sentinel position where the operation is not allowed.
	ErrInvalidIterator = errors.New("invalid iterator")
)
