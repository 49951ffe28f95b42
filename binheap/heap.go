package binheap

import (
	"cmp"
	"fmt"
)

// Heap is a binary heap of at most Cap() elements stored in an array.
// data[0:size] satisfies the heap property for order.
type Heap[T cmp.Ordered] struct {
	data  []T
	size  int
	order Order
}

// New allocates an empty heap with room for capacity elements.
// capacity must lie in [1, MaxCapacity].
func New[T cmp.Ordered](capacity int, order Order) (*Heap[T], error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidCapacity)
	}

	return &Heap[T]{
		data:  make([]T, capacity),
		order: order,
	}, nil
}

// Destroy releases the buffer; the heap rejects every later operation.
func (h *Heap[T]) Destroy() {
	if h == nil {
		return
	}
	h.data = nil
	h.size = 0
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int {
	if !h.alive() {
		return 0
	}

	return h.size
}

// Cap returns the capacity fixed at construction.
func (h *Heap[T]) Cap() int {
	if !h.alive() {
		return 0
	}

	return len(h.data)
}

// Order returns the heap order.
func (h *Heap[T]) Order() Order { return h.order }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.Len() == 0 }

// IsFull reports whether Insert would fail with ErrFull.
func (h *Heap[T]) IsFull() bool { return h.alive() && h.size == len(h.data) }

// Clear drops every element.
func (h *Heap[T]) Clear() {
	if h.alive() {
		h.size = 0
	}
}

// Insert appends e at index Len() and sifts it up.
// Complexity: O(log n).
func (h *Heap[T]) Insert(e T) error {
	if !h.alive() {
		return ErrDestroyed
	}
	if h.size == len(h.data) {
		return ErrFull
	}
	h.data[h.size] = e
	h.size++
	up(h.data, h.size-1, h.order)

	return nil
}

// Top returns the root without removing it.
func (h *Heap[T]) Top() (T, error) {
	var zero T
	if !h.alive() {
		return zero, ErrDestroyed
	}
	if h.size == 0 {
		return zero, ErrEmpty
	}

	return h.data[0], nil
}

// PopTop removes and returns the root. The last element takes its place and
// is sifted down.
// Complexity: O(log n).
func (h *Heap[T]) PopTop() (T, error) {
	top, err := h.Top()
	if err != nil {
		return top, err
	}
	h.size--
	h.data[0] = h.data[h.size]
	down(h.data, 0, h.size, h.order)

	return top, nil
}

// ReplaceTop swaps the root for e and restores the heap in one sift-down.
// It returns the old root.
func (h *Heap[T]) ReplaceTop(e T) (T, error) {
	top, err := h.Top()
	if err != nil {
		return top, err
	}
	h.data[0] = e
	down(h.data, 0, h.size, h.order)

	return top, nil
}

// DeleteAt removes and returns the element at array index i.
//
// The last element moves into slot i. It may belong above or below that
// slot, so the heap is repaired with a sift-down followed by a sift-up.
//
// Errors: ErrEmpty on an empty heap, ErrOutOfBounds for i outside [0, Len()).
func (h *Heap[T]) DeleteAt(i int) (T, error) {
	var zero T
	if !h.alive() {
		return zero, ErrDestroyed
	}
	if h.size == 0 {
		return zero, ErrEmpty
	}
	if i < 0 || i >= h.size {
		return zero, fmt.Errorf("delete at %d, len %d: %w", i, h.size, ErrOutOfBounds)
	}
	removed := h.data[i]
	h.size--
	if i < h.size {
		h.data[i] = h.data[h.size]
		down(h.data, i, h.size, h.order)
		up(h.data, i, h.order)
	}

	return removed, nil
}

// BuildFromArray replaces the contents with the first min(len(a), Cap())
// elements of a and heapifies bottom-up from index (n-2)/2 down to 0.
// Extra input is dropped silently; the number of elements loaded is returned.
//
// Complexity: O(n).
func (h *Heap[T]) BuildFromArray(a []T) int {
	if !h.alive() {
		return 0
	}
	n := copy(h.data, a)
	h.size = n
	heapify(h.data[:n], h.order)

	return n
}

// Values returns a copy of the heap array in index order.
func (h *Heap[T]) Values() []T {
	if !h.alive() {
		return nil
	}
	out := make([]T, h.size)
	copy(out, h.data[:h.size])

	return out
}

// Valid reports whether every parent/child pair satisfies the heap order.
func (h *Heap[T]) Valid() bool {
	if !h.alive() {
		return false
	}
	for i := 1; i < h.size; i++ {
		if before(h.data[i], h.data[(i-1)/2], h.order) {
			return false
		}
	}

	return true
}

func (h *Heap[T]) alive() bool {
	return h != nil && h.data != nil
}

// before reports whether a belongs strictly above b under order.
func before[T cmp.Ordered](a, b T, order Order) bool {
	if order == Max {
		return a > b
	}

	return a < b
}

// up sifts data[i] towards the root.
func up[T cmp.Ordered](data []T, i int, order Order) {
	for i > 0 {
		p := (i - 1) / 2
		if !before(data[i], data[p], order) {
			return
		}
		data[i], data[p] = data[p], data[i]
		i = p
	}
}

// down sifts data[i] towards the leaves of data[0:n].
func down[T cmp.Ordered](data []T, i, n int, order Order) {
	for {
		best := i
		if l := 2*i + 1; l < n && before(data[l], data[best], order) {
			best = l
		}
		if r := 2*i + 2; r < n && before(data[r], data[best], order) {
			best = r
		}
		if best == i {
			return
		}
		data[i], data[best] = data[best], data[i]
		i = best
	}
}

// heapify establishes the heap property over data.
func heapify[T cmp.Ordered](data []T, order Order) {
	n := len(data)
	for i := (n - 2) / 2; i >= 0; i-- {
		down(data, i, n, order)
	}
}
