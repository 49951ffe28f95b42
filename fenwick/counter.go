package fenwick

import "fmt"

// RangeCounter is a dynamic multiset of values from [0, MaxValue()] that
// answers "how many live values lie in [a, b]" in O(log M).
//
// freq[v] is the multiplicity of v; the tree encodes the same frequencies.
type RangeCounter struct {
	tree *Tree
	freq []int
	live int
}

// NewRangeCounter returns an empty counter over [0, maxValue].
func NewRangeCounter(maxValue int) (*RangeCounter, error) {
	if maxValue < 0 {
		return nil, fmt.Errorf("max value %d: %w", maxValue, ErrInvalidSize)
	}
	t, err := New(maxValue + 1)
	if err != nil {
		return nil, err
	}

	return &RangeCounter{tree: t, freq: make([]int, maxValue+1)}, nil
}

// MaxValue returns the upper end of the value domain.
func (c *RangeCounter) MaxValue() int { return len(c.freq) - 1 }

// Add records one occurrence of v.
func (c *RangeCounter) Add(v int) error {
	if err := c.tree.Update(v, 1); err != nil {
		return err
	}
	c.freq[v]++
	c.live++

	return nil
}

// Remove drops one occurrence of v; ErrNotPresent if there is none.
func (c *RangeCounter) Remove(v int) error {
	if err := c.tree.check(v); err != nil {
		return err
	}
	if c.freq[v] == 0 {
		return fmt.Errorf("remove %d: %w", v, ErrNotPresent)
	}
	add(c.tree.tree, v+1, -1)
	c.freq[v]--
	c.live--

	return nil
}

// Frequency returns the multiplicity of v (0 outside the domain).
func (c *RangeCounter) Frequency(v int) int {
	if c.tree.check(v) != nil {
		return 0
	}

	return c.freq[v]
}

// CountInRange returns the number of live values in [a, b].
func (c *RangeCounter) CountInRange(a, b int) (int, error) {
	return c.tree.RangeSum(a, b)
}

// Total returns the number of live values.
func (c *RangeCounter) Total() int { return c.live }

// Destroy releases the tree and the frequency table.
func (c *RangeCounter) Destroy() {
	if c == nil {
		return
	}
	c.tree.Destroy()
	c.freq = nil
	c.live = 0
}
