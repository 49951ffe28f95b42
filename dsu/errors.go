package dsu

import "errors"

var (
	// ErrInvalidSize indicates a negative universe size.
	ErrInvalidSize = errors.New("dsu: size must be non-negative")

	// ErrInvalidIndex indicates an element outside [0, n).
	ErrInvalidIndex = errors.New("dsu: index out of range")

	// ErrDestroyed indicates a nil or destroyed forest.
	ErrDestroyed = errors.New("dsu: set is nil or destroyed")

	// ErrCorrupt is returned by Validate when an invariant does not hold.
	ErrCorrupt = errors.New("dsu: invariant violated")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	ErrDisconnected = errors.New("dsu: graph is disconnected")

	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("dsu: grid must have at least one row and one column")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("dsu: all grid rows must have the same length")
)
