package seqlist

// Merge writes the elements of the sorted lists a and b into out in
// non-decreasing order. On ties the element from a goes first, so the merge
// is stable. out is overwritten; it may be a or b.
//
// Errors:
//   - ErrDestroyed if any list is nil or destroyed.
//   - ErrOverflow  if out is Fixed and cannot hold Len(a)+Len(b) elements;
//     out is left unchanged.
//
// Complexity: O(|a| + |b|).
func Merge(a, b, out *List) error {
	if !a.alive() || !b.alive() || !out.alive() {
		return ErrDestroyed
	}
	x, y := a.data[:a.length], b.data[:b.length]
	merged := make([]int, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		if x[i] <= y[j] {
			merged = append(merged, x[i])
			i++
		} else {
			merged = append(merged, y[j])
			j++
		}
	}
	merged = append(merged, x[i:]...)
	merged = append(merged, y[j:]...)

	return out.assign(merged)
}

// Intersection writes into out every value present in both sorted lists,
// each value exactly once, in ascending order.
func Intersection(a, b, out *List) error {
	if !a.alive() || !b.alive() || !out.alive() {
		return ErrDestroyed
	}
	x, y := a.data[:a.length], b.data[:b.length]
	var res []int
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i] < y[j]:
			i++
		case x[i] > y[j]:
			j++
		default:
			res = appendOnce(res, x[i])
			i++
			j++
		}
	}

	return out.assign(res)
}

// Union writes into out every value present in either sorted list, each
// value exactly once, in ascending order.
func Union(a, b, out *List) error {
	if !a.alive() || !b.alive() || !out.alive() {
		return ErrDestroyed
	}
	x, y := a.data[:a.length], b.data[:b.length]
	res := make([]int, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i] < y[j]:
			res = appendOnce(res, x[i])
			i++
		case x[i] > y[j]:
			res = appendOnce(res, y[j])
			j++
		default:
			res = appendOnce(res, x[i])
			i++
			j++
		}
	}
	for ; i < len(x); i++ {
		res = appendOnce(res, x[i])
	}
	for ; j < len(y); j++ {
		res = appendOnce(res, y[j])
	}

	return out.assign(res)
}

// appendOnce appends v unless it equals the current last element.
func appendOnce(res []int, v int) []int {
	if n := len(res); n > 0 && res[n-1] == v {
		return res
	}

	return append(res, v)
}
