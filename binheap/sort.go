package binheap

import "cmp"

// Sort heap-sorts a in place. A Max heap yields ascending output and a Min
// heap yields descending output: the root is swapped with the last unsorted
// slot and the heap shrinks by one on every round.
//
// Complexity: O(n log n) time, O(1) extra space. Not stable.
func Sort[T cmp.Ordered](a []T, order Order) {
	heapify(a, order)
	for end := len(a) - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		down(a, 0, end, order)
	}
}

// SortAscending heap-sorts a into non-decreasing order.
func SortAscending[T cmp.Ordered](a []T) { Sort(a, Max) }

// SortDescending heap-sorts a into non-increasing order.
func SortDescending[T cmp.Ordered](a []T) { Sort(a, Min) }
