package binheap

import (
	"cmp"
	"fmt"
)

// TopK returns the k largest elements of a in descending order.
//
// A Min heap of capacity k holds the best k seen so far; its root is the
// weakest of them. Each later element that beats the root replaces it.
//
// Errors: ErrInvalidK unless 1 <= k <= min(len(a), MaxCapacity).
//
// Complexity: O(n log k) time, O(k) memory.
func TopK[T cmp.Ordered](a []T, k int) ([]T, error) {
	h, err := selectK(a, k, Min)
	if err != nil {
		return nil, err
	}

	return drainReversed(h), nil
}

// BottomK returns the k smallest elements of a in ascending order.
// It mirrors TopK with a Max heap.
func BottomK[T cmp.Ordered](a []T, k int) ([]T, error) {
	h, err := selectK(a, k, Max)
	if err != nil {
		return nil, err
	}

	return drainReversed(h), nil
}

// KthLargest returns the k-th largest element of a (k = 1 is the maximum).
func KthLargest[T cmp.Ordered](a []T, k int) (T, error) {
	h, err := selectK(a, k, Min)
	if err != nil {
		var zero T
		return zero, err
	}

	return h.Top()
}

// KthSmallest returns the k-th smallest element of a (k = 1 is the minimum).
func KthSmallest[T cmp.Ordered](a []T, k int) (T, error) {
	h, err := selectK(a, k, Max)
	if err != nil {
		var zero T
		return zero, err
	}

	return h.Top()
}

// selectK scans a keeping the k elements that sort furthest from order's
// root: a Min heap keeps the k largest, a Max heap the k smallest.
func selectK[T cmp.Ordered](a []T, k int, order Order) (*Heap[T], error) {
	if k < 1 || k > len(a) || k > MaxCapacity {
		return nil, fmt.Errorf("k=%d, n=%d: %w", k, len(a), ErrInvalidK)
	}
	h, err := New[T](k, order)
	if err != nil {
		return nil, err
	}
	h.BuildFromArray(a[:k])
	for _, v := range a[k:] {
		if before(h.data[0], v, order) {
			h.data[0] = v
			down(h.data, 0, h.size, order)
		}
	}

	return h, nil
}

// drainReversed pops every element and returns them best-first, that is
// in the reverse of pop order.
func drainReversed[T cmp.Ordered](h *Heap[T]) []T {
	out := make([]T, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = h.PopTop()
	}

	return out
}
