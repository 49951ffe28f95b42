package dsu

import (
	"fmt"
	"sort"
)

// CountComponents returns the number of connected components of the
// undirected graph with vertices 0..n-1 and the given edges.
// Complexity: O(n + E·α(n)).
func CountComponents(n int, edges []Edge) (int, error) {
	d, err := fromEdges(n, edges, nil)
	if err != nil {
		return 0, err
	}

	return d.Count(), nil
}

// HasCycle reports whether the undirected graph contains a cycle. A
// self-loop or a repeated edge counts as a cycle.
func HasCycle(n int, edges []Edge) (bool, error) {
	cycle := false
	_, err := fromEdges(n, edges, func(Edge) { cycle = true })

	return cycle, err
}

// Kruskal computes a minimum spanning tree of the undirected weighted graph
// with vertices 0..n-1.
//
// Steps:
//  1. Validate every endpoint; drop self-loops.
//  2. Stable-sort edges by ascending weight, so equal weights keep input order.
//  3. Take each edge whose endpoints are still in different sets.
//  4. Stop at n-1 edges; fewer means the graph is disconnected.
//
// n == 0 is reported as disconnected; n == 1 yields an empty tree.
//
// Complexity: O(E log E + E·α(n)). Memory: O(n + E).
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	d, err := New(n)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if err := checkEdge(n, e); err != nil {
			return nil, 0, err
		}
		if e.From != e.To {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	mst := make([]Edge, 0, n-1)
	var total int64
	for _, e := range sorted {
		if len(mst) == n-1 {
			break
		}
		if d.Union(e.From, e.To) {
			mst = append(mst, e)
			total += e.Weight
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// Islands counts the 4-connected regions of land cells (value >= 1) in a
// rectangular grid. Each cell (x, y) is element y*width + x of a forest;
// every land cell is unioned with its land neighbours to the east and south.
//
// Complexity: O(W·H·α(W·H)).
func Islands(grid [][]int) (int, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return 0, ErrNonRectangular
		}
	}
	d, err := New(w * h)
	if err != nil {
		return 0, err
	}
	water := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid[y][x] < 1 {
				water++
				continue
			}
			i := y*w + x
			if x+1 < w && grid[y][x+1] >= 1 {
				d.Union(i, i+1)
			}
			if y+1 < h && grid[y+1][x] >= 1 {
				d.Union(i, i+w)
			}
		}
	}

	// Each water cell stays a singleton set.
	return d.Count() - water, nil
}

// fromEdges unions every edge into a fresh forest; onRedundant is called for
// edges whose endpoints were already connected.
func fromEdges(n int, edges []Edge, onRedundant func(Edge)) (*DisjointSet, error) {
	d, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := checkEdge(n, e); err != nil {
			return nil, err
		}
		if !d.Union(e.From, e.To) && onRedundant != nil {
			onRedundant(e)
		}
	}

	return d, nil
}

func checkEdge(n int, e Edge) error {
	if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
		return fmt.Errorf("edge (%d, %d), n=%d: %w", e.From, e.To, n, ErrInvalidIndex)
	}

	return nil
}
