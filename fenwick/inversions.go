package fenwick

import "slices"

// CountInversions returns the number of pairs i < j with a[i] > a[j].
//
// Values are compressed to 1-based ranks among the distinct values. Walking
// from the right, each element adds the count of already-seen elements of
// strictly smaller rank, then records its own rank. Equal values never
// count as an inversion.
//
// Complexity: O(n log n) time, O(n) memory.
func CountInversions(a []int) int64 {
	if len(a) < 2 {
		return 0
	}
	distinct := slices.Clone(a)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)

	tree := make([]int, len(distinct)+1)
	var inv int64
	for i := len(a) - 1; i >= 0; i-- {
		rank, _ := slices.BinarySearch(distinct, a[i])
		rank++
		inv += int64(sum(tree, rank-1))
		add(tree, rank, 1)
	}

	return inv
}

// CountInversionsNaive is the O(n²) baseline used to cross-check
// CountInversions.
func CountInversionsNaive(a []int) int64 {
	var inv int64
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				inv++
			}
		}
	}

	return inv
}
