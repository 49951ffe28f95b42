// Package classicds is a collection of classic in-memory data structures
// and the algorithms usually taught alongside them.
//
// 🚀 What is inside?
//
//	seqlist/: array-backed sequential list (fixed or growing), sorted merge,
//	           union, intersection, rotation, de-duplication
//	binheap/: generic binary min/max heap, heap sort, priority queue, Top-K
//	dsu/:     disjoint-set union with path compression and union by rank,
//	           plus connectivity helpers (components, cycles, Kruskal, islands)
//	fenwick/: 1-D and 2-D Fenwick trees, range-add tree, range counter,
//	           offline queries, inversion counting, binary persistence
//	match/:   naive, KMP (next / nextval), Boyer-Moore and Sunday search
//
// ✨ Conventions
//
//   - Every package reports failures through sentinel errors (errors.Is).
//     A failed mutation leaves its receiver unchanged.
//   - Destroy releases a structure's buffers; afterwards it is inert and
//     reports ErrDestroyed.
//   - Nothing is safe for concurrent use. Callers that share a structure
//     must serialise access themselves.
//
// Runnable demos live under examples/.
package classicds
