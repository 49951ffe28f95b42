package fenwick

import "fmt"

// Tree is a 1-D Fenwick tree over an implicit array A[0..Len()).
// tree has Len()+1 cells; tree[0] is unused.
type Tree struct {
	tree []int
	size int
}

// New returns a tree of the given size with every element zero.
func New(size int) (*Tree, error) {
	if size < 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}

	return &Tree{tree: make([]int, size+1), size: size}, nil
}

// FromSlice builds a tree over a copy of a by zeroing the buffer and
// applying len(a) point updates.
// Complexity: O(n log n).
func FromSlice(a []int) (*Tree, error) {
	t, err := New(len(a))
	if err != nil {
		return nil, err
	}
	for i, v := range a {
		add(t.tree, i+1, v)
	}

	return t, nil
}

// Destroy releases the buffer; later queries fail with ErrDestroyed.
func (t *Tree) Destroy() {
	if t == nil {
		return
	}
	t.tree = nil
	t.size = 0
}

// Len returns the number of implicit elements.
func (t *Tree) Len() int {
	if !t.alive() {
		return 0
	}

	return t.size
}

// Update adds delta to A[i].
//
//	j := i + 1
//	for j <= size { tree[j] += delta; j += lowbit(j) }
func (t *Tree) Update(i, delta int) error {
	if err := t.check(i); err != nil {
		return err
	}
	add(t.tree, i+1, delta)

	return nil
}

// PrefixSum returns A[0] + … + A[i]. PrefixSum(-1) is 0.
func (t *Tree) PrefixSum(i int) (int, error) {
	if !t.alive() {
		return 0, ErrDestroyed
	}
	if i < -1 || i >= t.size {
		return 0, fmt.Errorf("prefix %d, size %d: %w", i, t.size, ErrOutOfRange)
	}

	return sum(t.tree, i+1), nil
}

// RangeSum returns A[l] + … + A[r] for 0 <= l <= r < Len().
func (t *Tree) RangeSum(l, r int) (int, error) {
	if !t.alive() {
		return 0, ErrDestroyed
	}
	if l > r {
		return 0, fmt.Errorf("range [%d, %d]: %w", l, r, ErrInvalidRange)
	}
	if l < 0 || r >= t.size {
		return 0, fmt.Errorf("range [%d, %d], size %d: %w", l, r, t.size, ErrOutOfRange)
	}

	return sum(t.tree, r+1) - sum(t.tree, l), nil
}

// Get returns A[i], recovered as PrefixSum(i) - PrefixSum(i-1).
func (t *Tree) Get(i int) (int, error) {
	return t.RangeSum(i, i)
}

// Set assigns A[i] = v by applying Update(i, v - Get(i)).
func (t *Tree) Set(i, v int) error {
	old, err := t.Get(i)
	if err != nil {
		return err
	}
	add(t.tree, i+1, v-old)

	return nil
}

// RangeUpdate adds delta to every A[k] with l <= k <= r, one point update
// per element: O((r-l+1)·log n). RangeTree offers the O(log n) variant.
func (t *Tree) RangeUpdate(l, r, delta int) error {
	if _, err := t.RangeSum(l, r); err != nil {
		return err
	}
	for k := l; k <= r; k++ {
		add(t.tree, k+1, delta)
	}

	return nil
}

// Total returns the sum of all elements.
func (t *Tree) Total() int {
	if !t.alive() {
		return 0
	}

	return sum(t.tree, t.size)
}

// FindKthSmallest treats A as a frequency table and returns the smallest
// index i with PrefixSum(i) >= k, i.e. the position of the k-th smallest
// counted item. Elements must be non-negative so that prefix sums are
// monotone.
//
// Binary search over PrefixSum: O(log² n).
//
// Errors: ErrInvalidArgument for k < 1, ErrNotFound when k > Total().
func (t *Tree) FindKthSmallest(k int) (int, error) {
	if !t.alive() {
		return -1, ErrDestroyed
	}
	if k < 1 {
		return -1, fmt.Errorf("k=%d: %w", k, ErrInvalidArgument)
	}
	lo, hi := 0, t.size-1
	found := -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if sum(t.tree, mid+1) >= k {
			found = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("k=%d, total %d: %w", k, t.Total(), ErrNotFound)
	}

	return found, nil
}

// Values reconstructs A as a slice.
func (t *Tree) Values() []int {
	if !t.alive() {
		return nil
	}
	out := make([]int, t.size)
	for i := range out {
		out[i] = sum(t.tree, i+1) - sum(t.tree, i)
	}

	return out
}

func (t *Tree) alive() bool {
	return t != nil && t.tree != nil
}

func (t *Tree) check(i int) error {
	if !t.alive() {
		return ErrDestroyed
	}
	if i < 0 || i >= t.size {
		return fmt.Errorf("index %d, size %d: %w", i, t.size, ErrOutOfRange)
	}

	return nil
}
