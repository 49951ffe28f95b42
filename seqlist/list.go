package seqlist

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NewFixed returns an empty list with FixedCapacity cells that never grows.
func NewFixed() *List {
	return &List{
		data: make([]int, FixedCapacity),
		kind: Fixed,
	}
}

// NewDynamic returns an empty list that starts at InitialCapacity cells and
// grows by GrowthIncrement cells whenever an insert would exceed capacity.
//
// Example:
//
//	l := seqlist.NewDynamic(seqlist.WithInitialCapacity(64))
func NewDynamic(opts ...Option) *List {
	o := gatherOptions(opts)

	return &List{
		data:   make([]int, o.initial),
		kind:   Dynamic,
		growth: o.growth,
	}
}

// FromSlice builds a list of the given kind holding a copy of values.
// A Fixed list fails with ErrOverflow when len(values) > FixedCapacity.
func FromSlice(kind Kind, values []int, opts ...Option) (*List, error) {
	var l *List
	if kind == Dynamic {
		l = NewDynamic(opts...)
	} else {
		l = NewFixed()
	}
	if err := l.assign(values); err != nil {
		return nil, err
	}

	return l, nil
}

// Destroy releases the buffer. The list is inert afterwards; calling
// Destroy again is a no-op.
func (l *List) Destroy() {
	if l == nil {
		return
	}
	l.data = nil
	l.length = 0
}

// Clear removes every element but keeps the capacity.
func (l *List) Clear() {
	if l.alive() {
		l.length = 0
	}
}

// Len returns the number of elements (0 for a destroyed list).
func (l *List) Len() int {
	if !l.alive() {
		return 0
	}

	return l.length
}

// Cap returns the number of allocated cells.
func (l *List) Cap() int {
	if !l.alive() {
		return 0
	}

	return len(l.data)
}

// Kind reports whether the list is Fixed or Dynamic.
func (l *List) Kind() Kind { return l.kind }

// IsEmpty reports whether the list holds no elements.
func (l *List) IsEmpty() bool { return l.Len() == 0 }

// Get returns the element at 1-based position i.
func (l *List) Get(i int) (int, error) {
	if !l.alive() {
		return 0, ErrDestroyed
	}
	if i < 1 || i > l.length {
		return 0, fmt.Errorf("get %d of %d: %w", i, l.length, ErrOutOfBounds)
	}

	return l.data[i-1], nil
}

// Locate returns the smallest 1-based position holding e, or 0 if none.
// Complexity: O(n).
func (l *List) Locate(e int) int {
	if !l.alive() {
		return 0
	}
	for i := 0; i < l.length; i++ {
		if l.data[i] == e {
			return i + 1
		}
	}

	return 0
}

// Prior returns the element just before the first occurrence of e.
func (l *List) Prior(e int) (int, error) {
	if !l.alive() {
		return 0, ErrDestroyed
	}
	pos := l.Locate(e)
	switch {
	case pos == 0:
		return 0, ErrNotFound
	case pos == 1:
		return 0, ErrNoPredecessor
	}

	return l.data[pos-2], nil
}

// Next returns the element just after the first occurrence of e.
func (l *List) Next(e int) (int, error) {
	if !l.alive() {
		return 0, ErrDestroyed
	}
	pos := l.Locate(e)
	switch {
	case pos == 0:
		return 0, ErrNotFound
	case pos == l.length:
		return 0, ErrNoSuccessor
	}

	return l.data[pos], nil
}

// Insert places e at 1-based position i, shifting positions >= i one step
// towards the tail. i must lie in [1, Len()+1].
//
// Errors:
//   - ErrOutOfBounds if i is outside [1, Len()+1].
//   - ErrOverflow    if a Fixed list is full.
//   - ErrAllocation  if a Dynamic list cannot grow.
//
// Complexity: O(n) shifts, plus O(n) copy when a dynamic list grows.
func (l *List) Insert(i, e int) error {
	if !l.alive() {
		return ErrDestroyed
	}
	if i < 1 || i > l.length+1 {
		return fmt.Errorf("insert at %d, want [1, %d]: %w", i, l.length+1, ErrOutOfBounds)
	}
	if err := l.reserve(1); err != nil {
		return err
	}
	copy(l.data[i:l.length+1], l.data[i-1:l.length])
	l.data[i-1] = e
	l.length++

	return nil
}

// Append inserts e after the last element.
func (l *List) Append(e int) error {
	return l.Insert(l.Len()+1, e)
}

// Delete removes and returns the element at 1-based position i, shifting
// later elements one step towards the head.
func (l *List) Delete(i int) (int, error) {
	if !l.alive() {
		return 0, ErrDestroyed
	}
	if l.length == 0 {
		return 0, ErrEmpty
	}
	if i < 1 || i > l.length {
		return 0, fmt.Errorf("delete at %d, want [1, %d]: %w", i, l.length, ErrOutOfBounds)
	}
	removed := l.data[i-1]
	copy(l.data[i-1:], l.data[i:l.length])
	l.length--

	return removed, nil
}

// Traverse calls visit for every element in order with its 1-based
// position. Iteration stops early when visit returns false.
func (l *List) Traverse(visit func(pos, value int) bool) {
	if !l.alive() || visit == nil {
		return
	}
	for i := 0; i < l.length; i++ {
		if !visit(i+1, l.data[i]) {
			return
		}
	}
}

// Values returns a copy of the elements in order.
func (l *List) Values() []int {
	if !l.alive() {
		return nil
	}
	out := make([]int, l.length)
	copy(out, l.data[:l.length])

	return out
}

// String formats the list as "[a b c]". The format is not stable.
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.Values() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Print writes a one-line dump of the list to w.
func (l *List) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s list len=%d cap=%d %s\n", l.kind, l.Len(), l.Cap(), l)

	return err
}

func (l *List) alive() bool {
	return l != nil && l.data != nil
}

// reserve makes room for extra more elements, growing a dynamic list in
// GrowthIncrement steps. Nothing is modified on failure.
func (l *List) reserve(extra int) error {
	need := l.length + extra
	if need <= len(l.data) {
		return nil
	}
	if l.kind == Fixed {
		return ErrOverflow
	}
	if need > MaxCapacity {
		return ErrAllocation
	}
	newCap := len(l.data)
	for newCap < need {
		newCap += l.growth
	}
	if newCap > MaxCapacity {
		newCap = MaxCapacity
	}
	grown := make([]int, newCap)
	copy(grown, l.data[:l.length])
	l.data = grown

	return nil
}

// assign replaces the contents with values, all or nothing.
func (l *List) assign(values []int) error {
	if !l.alive() {
		return ErrDestroyed
	}
	saved := l.length
	l.length = 0
	if err := l.reserve(len(values)); err != nil {
		l.length = saved
		return err
	}
	copy(l.data, values)
	l.length = len(values)

	return nil
}
