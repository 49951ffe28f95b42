package fenwick

import "fmt"

// Query is one range-sum request of an offline batch. ProcessOffline fills
// Result; ID is carried through untouched for the caller's bookkeeping.
type Query struct {
	Left, Right int
	ID          int
	Result      int
}

// ProcessOffline builds one tree over a and writes RangeSum(Left, Right)
// into every query's Result. All queries are validated first; on error no
// Result is written.
// Complexity: O((n + q) log n).
func ProcessOffline(a []int, qs []Query) error {
	t, err := FromSlice(a)
	if err != nil {
		return err
	}
	for _, q := range qs {
		if q.Left > q.Right {
			return fmt.Errorf("query %d: %w", q.ID, ErrInvalidRange)
		}
		if q.Left < 0 || q.Right >= len(a) {
			return fmt.Errorf("query %d [%d, %d], size %d: %w", q.ID, q.Left, q.Right, len(a), ErrOutOfRange)
		}
	}
	for i := range qs {
		qs[i].Result, _ = t.RangeSum(qs[i].Left, qs[i].Right)
	}

	return nil
}
