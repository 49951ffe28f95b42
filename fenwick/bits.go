package fenwick

// lowbit returns the value of the lowest set bit of i.
func lowbit(i int) int { return i & -i }

// add adds delta at 1-based position j of the Fenwick buffer t.
func add(t []int, j, delta int) {
	for n := len(t) - 1; j > 0 && j <= n; j += lowbit(j) {
		t[j] += delta
	}
}

// sum returns the sum of the first j implicit elements of t.
func sum(t []int, j int) int {
	s := 0
	for ; j > 0; j -= lowbit(j) {
		s += t[j]
	}

	return s
}
