package seqlist

import "fmt"

// DeleteAll removes every element equal to x and returns how many were
// removed. Survivors keep their relative order.
//
// Single pass with a write cursor k: every kept element is copied to
// data[k], so the list is compacted in place.
//
// Complexity: O(n) time, O(1) space.
func (l *List) DeleteAll(x int) int {
	return l.compact(func(v int) bool { return v == x })
}

// DeleteRange removes every element v with s <= v <= t and returns how many
// were removed. It fails with ErrInvalidRange when s > t.
//
// Complexity: O(n) time, O(1) space.
func (l *List) DeleteRange(s, t int) (int, error) {
	if !l.alive() {
		return 0, ErrDestroyed
	}
	if s > t {
		return 0, fmt.Errorf("delete range [%d, %d]: %w", s, t, ErrInvalidRange)
	}

	return l.compact(func(v int) bool { return v >= s && v <= t }), nil
}

// compact drops every element for which drop reports true.
func (l *List) compact(drop func(int) bool) int {
	if !l.alive() {
		return 0
	}
	k := 0
	for i := 0; i < l.length; i++ {
		if drop(l.data[i]) {
			continue
		}
		l.data[k] = l.data[i]
		k++
	}
	removed := l.length - k
	l.length = k

	return removed
}

// Reverse reverses the list in place.
func (l *List) Reverse() {
	if l.alive() {
		reverse(l.data, 0, l.length-1)
	}
}

// reverse swaps a[lo..hi] end for end.
func reverse(a []int, lo, hi int) {
	for ; lo < hi; lo, hi = lo+1, hi-1 {
		a[lo], a[hi] = a[hi], a[lo]
	}
}

// RotateLeft moves every element k positions towards the head, wrapping
// around: the element at index i ends up at index (i-k) mod n.
// Negative k rotates right. Empty lists are left untouched.
//
// Three reversals:
//  1. reverse data[0:k]
//  2. reverse data[k:n]
//  3. reverse data[0:n]
//
// Complexity: O(n) time, O(1) space.
func (l *List) RotateLeft(k int) {
	if !l.alive() || l.length == 0 {
		return
	}
	n := l.length
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	reverse(l.data, 0, k-1)
	reverse(l.data, k, n-1)
	reverse(l.data, 0, n-1)
}

// SortedInsert inserts e into a non-decreasing list, keeping it sorted.
// Elements strictly greater than e are shifted one cell to the right, so e
// lands after any run of equal values.
func (l *List) SortedInsert(e int) error {
	if !l.alive() {
		return ErrDestroyed
	}
	if err := l.reserve(1); err != nil {
		return err
	}
	i := l.length - 1
	for i >= 0 && l.data[i] > e {
		l.data[i+1] = l.data[i]
		i--
	}
	l.data[i+1] = e
	l.length++

	return nil
}

// Unique collapses every run of equal consecutive elements to one element
// and returns how many were removed. On a sorted list this removes all
// duplicates.
func (l *List) Unique() int {
	if !l.alive() || l.length < 2 {
		return 0
	}
	k := 0
	for i := 1; i < l.length; i++ {
		if l.data[i] != l.data[k] {
			k++
			l.data[k] = l.data[i]
		}
	}
	removed := l.length - (k + 1)
	l.length = k + 1

	return removed
}

// BinarySearch returns the 1-based position of some element equal to e in a
// non-decreasing list, or 0 if there is none.
// Complexity: O(log n).
func (l *List) BinarySearch(e int) int {
	if !l.alive() {
		return 0
	}
	low, high := 0, l.length-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case l.data[mid] == e:
			return mid + 1
		case l.data[mid] < e:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return 0
}
