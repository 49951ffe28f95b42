// Package dsu implements a disjoint-set union (union-find) forest over the
// fixed universe {0, …, n-1}, together with graph-connectivity helpers built
// on it.
//
// What & Why
//
//   - Find compresses every visited path onto the root; Union attaches the
//     lower-rank root under the higher-rank one (UnionBySize compares tree
//     sizes instead). Together they give amortised O(α(n)) per operation.
//   - FindPlain walks to the root without rewriting anything. It exists only
//     so benchmarks can compare against the compressed variant.
//   - Count, SizeOf, Roots, Components, Groups answer structural questions
//     about the partition.
//
// Invariants (checked by Validate):
//
//   - parent[i] ∈ [0, n); following parents always reaches a root r with
//     parent[r] == r.
//   - For every root r, size[r] equals the number of nodes whose root is r.
//   - rank[r] is an upper bound on the height of the tree at r.
//   - Count() equals the number of roots.
//
// Graph helpers
//
//   - CountComponents, HasCycle: undirected edge lists over n vertices.
//   - Kruskal: minimum spanning tree by stable weight order.
//   - Islands: 4-connected land regions of a rectangular grid.
//
// Failure model
//
// Find returns -1 and Union / UnionBySize return false for indices outside
// [0, n); FindE and UnionE return ErrInvalidIndex instead. Merging two nodes
// that already share a root returns false and changes nothing.
package dsu
