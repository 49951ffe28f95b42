// Package binheap implements an array-backed binary heap with a selectable
// order (Min or Max), and the algorithms classically built on top of it:
// heap sort, a priority queue, and Top-K selection.
//
// What:
//
//   - Heap[T]: Insert, PopTop, Top, DeleteAt, BuildFromArray over a buffer of
//     fixed capacity (at most MaxCapacity).
//   - Sort: in-place heap sort of a caller slice.
//   - PriorityQueue[T]: Enqueue / Dequeue / Peek pass-throughs over a Heap.
//   - TopK, BottomK, KthLargest, KthSmallest: selection with a k-sized heap.
//
// Layout:
//
//	parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2
//
// For a Min heap every parent is <= each child; for a Max heap every parent
// is >= each child. Sift-up and sift-down are iterative.
//
// Complexity:
//
//   - Insert, PopTop, DeleteAt: O(log n)
//   - BuildFromArray:           O(n) (bottom-up heapify)
//   - Sort:                     O(n log n), in place
//   - TopK / BottomK:           O(n log k), O(k) memory
//
// Errors:
//
//   - ErrFull, ErrEmpty, ErrOutOfBounds, ErrInvalidCapacity, ErrInvalidK,
//     ErrDestroyed.
//
// A Heap is not safe for concurrent use.
package binheap
