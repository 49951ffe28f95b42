package seqlist

import "errors"

// Sentinel errors returned by seqlist operations. Match them with errors.Is;
// some call sites wrap them with the offending position or range.
var (
	// ErrOutOfBounds indicates a 1-based position outside the legal range.
	ErrOutOfBounds = errors.New("seqlist: position out of bounds")

	// ErrOverflow indicates that a fixed-capacity list (or an output list of
	// Merge/Intersection/Union) cannot hold another element.
	ErrOverflow = errors.New("seqlist: list is full")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("seqlist: list is empty")

	// ErrInvalidRange indicates a value range [s, t] with s > t.
	ErrInvalidRange = errors.New("seqlist: invalid range, s > t")

	// ErrNotFound indicates that the requested value is not in the list.
	ErrNotFound = errors.New("seqlist: value not found")

	// ErrNoPredecessor indicates that the value sits at position 1.
	ErrNoPredecessor = errors.New("seqlist: value has no predecessor")

	// ErrNoSuccessor indicates that the value sits at the last position.
	ErrNoSuccessor = errors.New("seqlist: value has no successor")

	// ErrDestroyed indicates a nil or destroyed list.
	ErrDestroyed = errors.New("seqlist: list is nil or destroyed")

	// ErrAllocation indicates that a dynamic list cannot grow any further.
	ErrAllocation = errors.New("seqlist: cannot grow list")
)
