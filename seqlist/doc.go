// Package seqlist implements the classical sequential (array-backed) list
// over int elements, in a fixed-capacity and a dynamically growing variant.
//
// What:
//
//   - Positional access with 1-based positions: Get, Insert, Delete, Locate.
//   - Neighbour lookups by value: Prior, Next.
//   - Compound algorithms: DeleteAll, DeleteRange, Reverse, RotateLeft,
//     SortedInsert, Unique, BinarySearch.
//   - Two-list sweeps over sorted inputs: Merge, Intersection, Union.
//
// Why:
//
//   - RotateLeft is the three-reversal rotation: O(n) time, O(1) extra space.
//   - DeleteAll / DeleteRange / Unique compact in a single pass with a write
//     cursor, preserving the relative order of survivors.
//   - BinarySearch computes its midpoint as low + (high-low)/2 so that it never
//     overflows for indices near the top of the int range.
//
// Variants:
//
//   - NewFixed:   capacity is FixedCapacity and never changes; an insert into a
//     full list fails with ErrOverflow.
//   - NewDynamic: starts at InitialCapacity cells and grows by GrowthIncrement
//     cells whenever an insert would exceed the capacity (see WithInitialCapacity,
//     WithGrowthIncrement).
//
// Errors:
//
//   - ErrOutOfBounds  position outside the legal range.
//   - ErrOverflow     fixed list is full, or an output list is too small.
//   - ErrEmpty        operation needs at least one element.
//   - ErrInvalidRange DeleteRange with s > t.
//   - ErrNotFound, ErrNoPredecessor, ErrNoSuccessor for Prior/Next.
//   - ErrDestroyed    the list is nil or has been destroyed.
//   - ErrAllocation   a dynamic list cannot grow past MaxCapacity.
//
// Every failing operation leaves the list unchanged.
//
// A List is not safe for concurrent use; callers sharing one across
// goroutines must provide their own locking.
package seqlist
