package fenwick

import "fmt"

// RangeTree supports range-add and range-sum in O(log n) each.
//
// It keeps two Fenwick buffers over the difference array D of A
// (1-based, D[i] = A[i] - A[i-1]):
//
//	b1 accumulates D[i]
//	b2 accumulates D[i]·(i-1)
//	prefix(p) = sum(b1, p)·p - sum(b2, p)
type RangeTree struct {
	b1, b2 []int
	size   int
}

// NewRangeTree returns a range tree of the given size with all zeros.
func NewRangeTree(size int) (*RangeTree, error) {
	if size < 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}

	return &RangeTree{b1: make([]int, size+1), b2: make([]int, size+1), size: size}, nil
}

// Len returns the number of implicit elements.
func (t *RangeTree) Len() int { return t.size }

// RangeAdd adds delta to every A[k] with l <= k <= r.
func (t *RangeTree) RangeAdd(l, r, delta int) error {
	if err := t.check(l, r); err != nil {
		return err
	}
	lo, hi := l+1, r+1
	add(t.b1, lo, delta)
	add(t.b1, hi+1, -delta)
	add(t.b2, lo, delta*(lo-1))
	add(t.b2, hi+1, -delta*hi)

	return nil
}

// RangeSum returns A[l] + … + A[r].
func (t *RangeTree) RangeSum(l, r int) (int, error) {
	if err := t.check(l, r); err != nil {
		return 0, err
	}

	return t.prefix(r+1) - t.prefix(l), nil
}

// Get returns A[i].
func (t *RangeTree) Get(i int) (int, error) {
	return t.RangeSum(i, i)
}

// Destroy releases both buffers.
func (t *RangeTree) Destroy() {
	if t == nil {
		return
	}
	t.b1, t.b2 = nil, nil
	t.size = 0
}

func (t *RangeTree) prefix(p int) int {
	return sum(t.b1, p)*p - sum(t.b2, p)
}

func (t *RangeTree) check(l, r int) error {
	if t == nil || t.b1 == nil {
		return ErrDestroyed
	}
	if l > r {
		return fmt.Errorf("range [%d, %d]: %w", l, r, ErrInvalidRange)
	}
	if l < 0 || r >= t.size {
		return fmt.Errorf("range [%d, %d], size %d: %w", l, r, t.size, ErrOutOfRange)
	}

	return nil
}
