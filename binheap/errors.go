package binheap

import "errors"

var (
	// ErrFull indicates an Insert into a heap holding Cap() elements.
	ErrFull = errors.New("binheap: heap is full")

	// ErrEmpty indicates PopTop, Top or DeleteAt on an empty heap.
	ErrEmpty = errors.New("binheap: heap is empty")

	// ErrOutOfBounds indicates a DeleteAt index outside [0, Len()).
	ErrOutOfBounds = errors.New("binheap: index out of bounds")

	// ErrInvalidCapacity indicates a capacity outside [1, MaxCapacity].
	ErrInvalidCapacity = errors.New("binheap: capacity must be in [1, MaxCapacity]")

	// ErrInvalidK indicates a Top-K request with k outside [1, len(input)].
	ErrInvalidK = errors.New("binheap: k out of range")

	// ErrDestroyed indicates a nil or destroyed heap.
	ErrDestroyed = errors.New("binheap: heap is nil or destroyed")
)
