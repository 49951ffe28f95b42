// Package fenwick provides Fenwick trees (binary indexed trees) in one and
// two dimensions, and the structures classically derived from them.
//
// A Fenwick tree represents an implicit array A[0..n) without storing it.
// Cell tree[i] (1-based internally) holds the sum of A over the half-open
// window of length lowbit(i) ending at position i, where lowbit(i) = i & -i.
// Point updates walk upwards by adding lowbit; prefix queries walk
// downwards by subtracting it. Both touch O(log n) cells.
//
// What:
//
//   - Tree:         Update, PrefixSum, RangeSum, Get, Set, RangeUpdate,
//     FindKthSmallest, binary persistence (WriteTo / Decode, Save / Load).
//   - Tree2D:       the same on a rows×cols matrix, nesting the walk on both axes.
//   - RangeTree:    O(log n) range-add / range-sum via two trees over a
//     difference array.
//   - RangeCounter: frequency of values in [0, M] with range-count queries.
//   - ProcessOffline: answers a batch of range-sum queries over one array.
//   - CountInversions: counts pairs i < j with A[i] > A[j] in O(n log n).
//
// The external API is 0-based; PrefixSum(-1) is defined as 0 so that
// RangeSum(l, r) = PrefixSum(r) - PrefixSum(l-1) holds for l == 0.
//
// Errors:
//
// Invalid indices yield 0 with ErrOutOfRange, reversed ranges yield 0 with
// ErrInvalidRange. Nothing is mutated on failure.
//
// Binary layout (little-endian):
//
//	int32 size
//	int32 capacity        (number of buffer cells, size+1)
//	int32 cell[0..size]   (cell 0 is unused and written as 0)
package fenwick
