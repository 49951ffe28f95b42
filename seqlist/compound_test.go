package seqlist_test

import (
	"sort"
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classicds/seqlist"
)

// randomInts returns n values in [lo, hi) from a seeded uniform generator.
func randomInts(seed int64, n int, lo, hi int32) []int {
	g := rng.NewUniformGenerator(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = int(g.Int32Range(lo, hi))
	}

	return out
}

func TestDeleteAll(t *testing.T) {
	l := mustList(t, 3, 1, 3, 2, 3, 4)
	assert.Equal(t, 3, l.DeleteAll(3))
	assert.Equal(t, []int{1, 2, 4}, l.Values())
	assert.Equal(t, 0, l.DeleteAll(3))
}

func TestDeleteRange(t *testing.T) {
	l := mustList(t, 5, 1, 8, 3, 6, 2, 9)
	n, err := l.DeleteRange(3, 6)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 8, 2, 9}, l.Values())

	_, err = l.DeleteRange(7, 2)
	assert.ErrorIs(t, err, seqlist.ErrInvalidRange)
	assert.Equal(t, []int{1, 8, 2, 9}, l.Values(), "failed call must not mutate")
}

func TestReverse(t *testing.T) {
	l := mustList(t, 1, 2, 3, 4, 5)
	l.Reverse()
	assert.Equal(t, []int{5, 4, 3, 2, 1}, l.Values())

	empty := seqlist.NewFixed()
	empty.Reverse()
	assert.True(t, empty.IsEmpty())
}

// TestRotateLeft covers plain, wrapping, negative and zero rotations.
func TestRotateLeft(t *testing.T) {
	cases := []struct {
		k    int
		want []int
	}{
		{0, []int{1, 2, 3, 4, 5}},
		{2, []int{3, 4, 5, 1, 2}},
		{5, []int{1, 2, 3, 4, 5}},
		{7, []int{3, 4, 5, 1, 2}},
		{-1, []int{5, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		l := mustList(t, 1, 2, 3, 4, 5)
		l.RotateLeft(tc.k)
		assert.Equal(t, tc.want, l.Values(), "k=%d", tc.k)
	}

	empty := seqlist.NewDynamic()
	empty.RotateLeft(3)
	assert.True(t, empty.IsEmpty())
}

// TestRotateLeft_Identity checks rotate(k) then rotate(n - k mod n) is the
// identity on random lists.
func TestRotateLeft_Identity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		values := randomInts(seed, int(seed)+3, -50, 50)
		l := mustList(t, values...)
		n := l.Len()
		k := int(seed * 7)
		l.RotateLeft(k)
		l.RotateLeft(n - k%n)
		assert.Equal(t, values, l.Values(), "seed=%d", seed)
	}
}

func TestSortedInsert(t *testing.T) {
	l := seqlist.NewDynamic()
	for _, v := range []int{5, 1, 4, 1, 9, 2, 6} {
		require.NoError(t, l.SortedInsert(v))
	}
	assert.Equal(t, []int{1, 1, 2, 4, 5, 6, 9}, l.Values())

	full := seqlist.NewFixed()
	for i := 0; i < seqlist.FixedCapacity; i++ {
		require.NoError(t, full.Append(i))
	}
	assert.ErrorIs(t, full.SortedInsert(0), seqlist.ErrOverflow)
}

func TestUnique(t *testing.T) {
	l := mustList(t, 1, 1, 2, 2, 2, 3, 4, 4)
	assert.Equal(t, 4, l.Unique())
	assert.Equal(t, []int{1, 2, 3, 4}, l.Values())

	single := mustList(t, 7)
	assert.Equal(t, 0, single.Unique())
}

func TestBinarySearch(t *testing.T) {
	l := mustList(t, 1, 3, 5, 7, 9, 11)
	for i, v := range l.Values() {
		assert.Equal(t, i+1, l.BinarySearch(v))
	}
	assert.Equal(t, 0, l.BinarySearch(4))
	assert.Equal(t, 0, l.BinarySearch(0))
	assert.Equal(t, 0, l.BinarySearch(12))
	assert.Equal(t, 0, seqlist.NewFixed().BinarySearch(1))
}

// TestSorted_Scenario covers merge, intersection and union on the
// reference inputs.
func TestSorted_Scenario(t *testing.T) {
	out := seqlist.NewDynamic()

	require.NoError(t, seqlist.Merge(mustList(t, 1, 3, 5, 7), mustList(t, 2, 4, 6, 8, 9), out))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, out.Values())

	a, b := mustList(t, 1, 2, 3, 4, 5), mustList(t, 3, 4, 5, 6, 7)
	require.NoError(t, seqlist.Intersection(a, b, out))
	assert.Equal(t, []int{3, 4, 5}, out.Values())
	require.NoError(t, seqlist.Union(a, b, out))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, out.Values())
}

// TestSorted_Duplicates checks that set operations emit each value once.
func TestSorted_Duplicates(t *testing.T) {
	a, b := mustList(t, 1, 1, 2, 3, 3), mustList(t, 1, 3, 3, 4)
	out := seqlist.NewDynamic()

	require.NoError(t, seqlist.Intersection(a, b, out))
	assert.Equal(t, []int{1, 3}, out.Values())
	require.NoError(t, seqlist.Union(a, b, out))
	assert.Equal(t, []int{1, 2, 3, 4}, out.Values())
	require.NoError(t, seqlist.Merge(a, b, out))
	assert.Equal(t, []int{1, 1, 1, 2, 3, 3, 3, 3, 4}, out.Values())
}

// TestMerge_Random checks the merge output is sorted and has length |a|+|b|.
func TestMerge_Random(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		x := randomInts(seed, 30, 0, 100)
		y := randomInts(seed+100, 25, 0, 100)
		sort.Ints(x)
		sort.Ints(y)
		out := seqlist.NewDynamic()
		require.NoError(t, seqlist.Merge(mustList(t, x...), mustList(t, y...), out))
		got := out.Values()
		assert.Len(t, got, len(x)+len(y))
		assert.True(t, sort.IntsAreSorted(got))
	}
}

// TestMerge_IntoSelfAndOverflow covers aliasing and a too-small fixed output.
func TestMerge_IntoSelfAndOverflow(t *testing.T) {
	a := mustList(t, 1, 4)
	require.NoError(t, seqlist.Merge(a, mustList(t, 2, 3), a))
	assert.Equal(t, []int{1, 2, 3, 4}, a.Values())

	big := make([]int, 60)
	for i := range big {
		big[i] = i
	}
	out, err := seqlist.FromSlice(seqlist.Fixed, []int{42})
	require.NoError(t, err)
	err = seqlist.Merge(mustList(t, big...), mustList(t, big...), out)
	assert.ErrorIs(t, err, seqlist.ErrOverflow)
	assert.Equal(t, []int{42}, out.Values(), "failed merge must leave out unchanged")
}
