package dsu

import "fmt"

// SizeOf returns the number of elements in the set containing x, or 0 if x
// is out of range.
func (d *DisjointSet) SizeOf(x int) int {
	r := d.Find(x)
	if r < 0 {
		return 0
	}

	return d.size[r]
}

// Roots returns the root of every set in ascending order.
// Complexity: O(n).
func (d *DisjointSet) Roots() []int {
	if !d.alive() {
		return nil
	}
	roots := make([]int, 0, d.components)
	for i, p := range d.parent {
		if p == i {
			roots = append(roots, i)
		}
	}

	return roots
}

// Components returns the root and size of every set, ordered by root.
func (d *DisjointSet) Components() []ComponentInfo {
	roots := d.Roots()
	out := make([]ComponentInfo, len(roots))
	for i, r := range roots {
		out[i] = ComponentInfo{Root: r, Size: d.size[r]}
	}

	return out
}

// Groups returns the members of every set. Groups are ordered by their
// smallest member and members are ascending.
// Complexity: O(n·α(n)).
func (d *DisjointSet) Groups() [][]int {
	if !d.alive() {
		return nil
	}
	slot := make(map[int]int, d.components)
	groups := make([][]int, 0, d.components)
	for i := range d.parent {
		r := d.Find(i)
		g, ok := slot[r]
		if !ok {
			g = len(groups)
			slot[r] = g
			groups = append(groups, make([]int, 0, d.size[r]))
		}
		groups[g] = append(groups[g], i)
	}

	return groups
}

// Largest returns the size of the biggest set (0 for an empty universe).
func (d *DisjointSet) Largest() int {
	best := 0
	for _, c := range d.Components() {
		best = max(best, c.Size)
	}

	return best
}

// Smallest returns the size of the smallest set (0 for an empty universe).
func (d *DisjointSet) Smallest() int {
	comps := d.Components()
	if len(comps) == 0 {
		return 0
	}
	best := comps[0].Size
	for _, c := range comps[1:] {
		best = min(best, c.Size)
	}

	return best
}

// Validate checks every structural invariant of the forest and returns a
// wrapped ErrCorrupt describing the first violation. It does not compress
// paths, so it leaves the forest untouched.
func (d *DisjointSet) Validate() error {
	if !d.alive() {
		return ErrDestroyed
	}
	n := len(d.parent)
	counted := make([]int, n)
	height := make([]int, n)
	for i := 0; i < n; i++ {
		x, steps := i, 0
		for d.parent[x] != x {
			p := d.parent[x]
			if p < 0 || p >= n {
				return fmt.Errorf("parent[%d]=%d: %w", x, p, ErrCorrupt)
			}
			x = p
			if steps++; steps > n {
				return fmt.Errorf("cycle through %d: %w", i, ErrCorrupt)
			}
		}
		counted[x]++
		height[x] = max(height[x], steps)
	}
	roots, total := 0, 0
	for r := 0; r < n; r++ {
		if d.parent[r] != r {
			continue
		}
		roots++
		total += d.size[r]
		if d.size[r] != counted[r] {
			return fmt.Errorf("size[%d]=%d, counted %d: %w", r, d.size[r], counted[r], ErrCorrupt)
		}
		if d.rank[r] < height[r] {
			return fmt.Errorf("rank[%d]=%d below height %d: %w", r, d.rank[r], height[r], ErrCorrupt)
		}
	}
	if roots != d.components {
		return fmt.Errorf("components=%d, roots=%d: %w", d.components, roots, ErrCorrupt)
	}
	if total != n {
		return fmt.Errorf("sizes sum to %d, n=%d: %w", total, n, ErrCorrupt)
	}

	return nil
}
