package fenwick

import "fmt"

// Tree2D is a Fenwick tree over an implicit rows×cols matrix. The buffer is
// (rows+1)×(cols+1); row 0 and column 0 are unused.
type Tree2D struct {
	tree       [][]int
	rows, cols int
}

// New2D returns a rows×cols tree of zeros.
func New2D(rows, cols int) (*Tree2D, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	tree := make([][]int, rows+1)
	for i := range tree {
		tree[i] = make([]int, cols+1)
	}

	return &Tree2D{tree: tree, rows: rows, cols: cols}, nil
}

// From2D builds a tree over a rectangular matrix.
func From2D(m [][]int) (*Tree2D, error) {
	rows, cols := len(m), 0
	if rows > 0 {
		cols = len(m[0])
	}
	for _, row := range m {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	t, err := New2D(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, row := range m {
		for c, v := range row {
			t.add(r+1, c+1, v)
		}
	}

	return t, nil
}

// Destroy releases every row.
func (t *Tree2D) Destroy() {
	if t == nil {
		return
	}
	t.tree = nil
	t.rows, t.cols = 0, 0
}

// Rows returns the number of rows.
func (t *Tree2D) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Tree2D) Cols() int { return t.cols }

// Update adds delta to cell (r, c).
//
//	for i := r+1; i <= rows; i += lowbit(i)
//	    for j := c+1; j <= cols; j += lowbit(j)
//	        tree[i][j] += delta
func (t *Tree2D) Update(r, c, delta int) error {
	if err := t.check(r, c); err != nil {
		return err
	}
	t.add(r+1, c+1, delta)

	return nil
}

// PrefixSum returns the sum of the sub-matrix [0..r]×[0..c]. A row or
// column of -1 selects the empty prefix and yields 0.
func (t *Tree2D) PrefixSum(r, c int) (int, error) {
	if t == nil || t.tree == nil {
		return 0, ErrDestroyed
	}
	if r < -1 || r >= t.rows || c < -1 || c >= t.cols {
		return 0, fmt.Errorf("prefix (%d, %d), shape %dx%d: %w", r, c, t.rows, t.cols, ErrOutOfRange)
	}

	return t.query(r+1, c+1), nil
}

// RangeSum returns the sum of the sub-matrix [r1..r2]×[c1..c2]:
//
//	Q(r2,c2) - Q(r1-1,c2) - Q(r2,c1-1) + Q(r1-1,c1-1)
func (t *Tree2D) RangeSum(r1, c1, r2, c2 int) (int, error) {
	if t == nil || t.tree == nil {
		return 0, ErrDestroyed
	}
	if r1 > r2 || c1 > c2 {
		return 0, fmt.Errorf("range (%d, %d)-(%d, %d): %w", r1, c1, r2, c2, ErrInvalidRange)
	}
	if err := t.check(r1, c1); err != nil {
		return 0, err
	}
	if err := t.check(r2, c2); err != nil {
		return 0, err
	}

	return t.query(r2+1, c2+1) - t.query(r1, c2+1) - t.query(r2+1, c1) + t.query(r1, c1), nil
}

// Get returns cell (r, c).
func (t *Tree2D) Get(r, c int) (int, error) {
	return t.RangeSum(r, c, r, c)
}

// Set assigns cell (r, c) = v.
func (t *Tree2D) Set(r, c, v int) error {
	old, err := t.Get(r, c)
	if err != nil {
		return err
	}
	t.add(r+1, c+1, v-old)

	return nil
}

func (t *Tree2D) add(i0, j0, delta int) {
	for i := i0; i <= t.rows; i += lowbit(i) {
		for j := j0; j <= t.cols; j += lowbit(j) {
			t.tree[i][j] += delta
		}
	}
}

func (t *Tree2D) query(i0, j0 int) int {
	s := 0
	for i := i0; i > 0; i -= lowbit(i) {
		for j := j0; j > 0; j -= lowbit(j) {
			s += t.tree[i][j]
		}
	}

	return s
}

func (t *Tree2D) check(r, c int) error {
	if t == nil || t.tree == nil {
		return ErrDestroyed
	}
	if r < 0 || r >= t.rows || c < 0 || c >= t.cols {
		return fmt.Errorf("cell (%d, %d), shape %dx%d: %w", r, c, t.rows, t.cols, ErrOutOfRange)
	}

	return nil
}
