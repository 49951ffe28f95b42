package dsu

// DisjointSet is a union-find forest over {0, …, n-1}.
//
// parent, rank and size all have length n; rank and size are meaningful
// only at roots.
type DisjointSet struct {
	parent     []int
	rank       []int
	size       []int
	components int
}

// ComponentInfo describes one component by its root and member count.
type ComponentInfo struct {
	Root int
	Size int
}

// Edge is an undirected, weighted edge between vertices From and To.
// Weight is ignored by CountComponents and HasCycle.
type Edge struct {
	From, To int
	Weight   int64
}
