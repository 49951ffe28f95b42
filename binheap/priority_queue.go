package binheap

import "cmp"

// PriorityQueue serves elements by priority: the smallest first for Min,
// the largest first for Max. It is a thin wrapper over Heap.
type PriorityQueue[T cmp.Ordered] struct {
	heap *Heap[T]
}

// NewPriorityQueue allocates a queue holding at most capacity elements.
func NewPriorityQueue[T cmp.Ordered](capacity int, order Order) (*PriorityQueue[T], error) {
	h, err := New[T](capacity, order)
	if err != nil {
		return nil, err
	}

	return &PriorityQueue[T]{heap: h}, nil
}

// Enqueue adds e; it fails with ErrFull when the queue is at capacity.
func (q *PriorityQueue[T]) Enqueue(e T) error { return q.heap.Insert(e) }

// Dequeue removes and returns the highest-priority element.
func (q *PriorityQueue[T]) Dequeue() (T, error) { return q.heap.PopTop() }

// Peek returns the highest-priority element without removing it.
func (q *PriorityQueue[T]) Peek() (T, error) { return q.heap.Top() }

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int { return q.heap.Len() }

// IsEmpty reports whether the queue is empty.
func (q *PriorityQueue[T]) IsEmpty() bool { return q.heap.IsEmpty() }

// Order returns the queue's priority order.
func (q *PriorityQueue[T]) Order() Order { return q.heap.Order() }

// Destroy releases the underlying heap.
func (q *PriorityQueue[T]) Destroy() { q.heap.Destroy() }
