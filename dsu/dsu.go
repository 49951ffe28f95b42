package dsu

import "fmt"

// New returns a forest of n singleton sets.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidSize)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
	}
	d.Reset()

	return d, nil
}

// Reset puts every element back into its own singleton set.
func (d *DisjointSet) Reset() {
	if !d.alive() {
		return
	}
	for i := range d.parent {
		d.parent[i] = i
		d.rank[i] = 0
		d.size[i] = 1
	}
	d.components = len(d.parent)
}

// Destroy releases all three arrays. Later calls see an empty, inert set.
func (d *DisjointSet) Destroy() {
	if d == nil {
		return
	}
	d.parent, d.rank, d.size = nil, nil, nil
	d.components = 0
}

// Len returns the size n of the universe.
func (d *DisjointSet) Len() int {
	if !d.alive() {
		return 0
	}

	return len(d.parent)
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int {
	if !d.alive() {
		return 0
	}

	return d.components
}

// Find returns the root of x, or -1 if x is out of range.
//
// Two passes: the first walks to the root, the second points every node
// on the walked path straight at it (full path compression). Iterative, so
// degenerate chains cannot exhaust the stack.
func (d *DisjointSet) Find(x int) int {
	if !d.valid(x) {
		return -1
	}
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// FindE is Find with an explicit error instead of the -1 sentinel.
func (d *DisjointSet) FindE(x int) (int, error) {
	if !d.alive() {
		return -1, ErrDestroyed
	}
	if !d.valid(x) {
		return -1, fmt.Errorf("find %d, n=%d: %w", x, len(d.parent), ErrInvalidIndex)
	}

	return d.Find(x), nil
}

// FindPlain returns the root of x without compressing the path, or -1 if
// x is out of range. Intended for benchmark comparisons only.
func (d *DisjointSet) FindPlain(x int) int {
	if !d.valid(x) {
		return -1
	}
	for d.parent[x] != x {
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y by rank and reports whether a merge
// happened. It returns false, without mutating anything, when x and y
// already share a root or either index is out of range.
//
//   - rank[rx] < rank[ry]: rx goes under ry.
//   - rank[rx] > rank[ry]: ry goes under rx.
//   - equal ranks:         ry goes under rx and rank[rx] grows by one.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx < 0 || ry < 0 || rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.link(rx, ry)
	case d.rank[rx] > d.rank[ry]:
		d.link(ry, rx)
	default:
		d.link(ry, rx)
		d.rank[rx]++
	}

	return true
}

// UnionE is Union with errors: ErrInvalidIndex for bad indices. The bool is
// false when x and y were already connected.
func (d *DisjointSet) UnionE(x, y int) (bool, error) {
	if !d.alive() {
		return false, ErrDestroyed
	}
	if !d.valid(x) || !d.valid(y) {
		return false, fmt.Errorf("union %d, %d, n=%d: %w", x, y, len(d.parent), ErrInvalidIndex)
	}

	return d.Union(x, y), nil
}

// UnionBySize merges the sets of x and y, attaching the smaller tree under
// the larger one (ties keep the root of x). Same return contract as Union.
func (d *DisjointSet) UnionBySize(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx < 0 || ry < 0 || rx == ry {
		return false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.link(ry, rx)
	if d.rank[rx] <= d.rank[ry] {
		d.rank[rx] = d.rank[ry] + 1
	}

	return true
}

// Connected reports whether x and y are in the same set. Out-of-range
// indices are never connected.
func (d *DisjointSet) Connected(x, y int) bool {
	rx := d.Find(x)

	return rx >= 0 && rx == d.Find(y)
}

// link hangs root child under root parent.
func (d *DisjointSet) link(child, parent int) {
	d.parent[child] = parent
	d.size[parent] += d.size[child]
	d.components--
}

func (d *DisjointSet) alive() bool {
	return d != nil && d.parent != nil
}

func (d *DisjointSet) valid(x int) bool {
	return d.alive() && x >= 0 && x < len(d.parent)
}
