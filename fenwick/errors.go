package fenwick

import "errors"

var (
	// ErrInvalidSize indicates a negative size or dimension.
	ErrInvalidSize = errors.New("fenwick: size must be non-negative")

	// ErrOutOfRange indicates an index outside the tree.
	ErrOutOfRange = errors.New("fenwick: index out of range")

	// ErrInvalidRange indicates a range whose left end exceeds its right end.
	ErrInvalidRange = errors.New("fenwick: invalid range, left > right")

	// ErrInvalidArgument indicates a nonsensical scalar argument.
	ErrInvalidArgument = errors.New("fenwick: invalid argument")

	// ErrNotPresent indicates removing a value whose frequency is zero.
	ErrNotPresent = errors.New("fenwick: value not present")

	// ErrNotFound indicates that no index satisfies a search.
	ErrNotFound = errors.New("fenwick: no such index")

	// ErrNonRectangular indicates matrix rows of differing lengths.
	ErrNonRectangular = errors.New("fenwick: all rows must have the same length")

	// ErrValueOverflow indicates a cell that does not fit the int32 wire format.
	ErrValueOverflow = errors.New("fenwick: cell value exceeds int32 range")

	// ErrCorrupt indicates malformed or truncated serialized data.
	ErrCorrupt = errors.New("fenwick: corrupt serialized tree")

	// ErrDestroyed indicates a nil or destroyed structure.
	ErrDestroyed = errors.New("fenwick: structure is nil or destroyed")
)
