package binheap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classicds/binheap"
)

func TestSort(t *testing.T) {
	a := []int{5, -2, 9, 0, 5, 3, 3, 8}
	binheap.SortAscending(a)
	assert.Equal(t, []int{-2, 0, 3, 3, 5, 5, 8, 9}, a)

	binheap.SortDescending(a)
	assert.Equal(t, []int{9, 8, 5, 5, 3, 3, 0, -2}, a)

	binheap.Sort([]int{}, binheap.Max)
	one := []int{1}
	binheap.Sort(one, binheap.Min)
	assert.Equal(t, []int{1}, one)
}

func TestSort_Random(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a := randomInts(seed, 500, -10_000, 10_000)
		want := append([]int(nil), a...)
		sort.Ints(want)
		binheap.Sort(a, binheap.Max)
		assert.Equal(t, want, a, "seed=%d", seed)
	}
}

func TestTopKBottomK(t *testing.T) {
	a := []int{7, 2, 9, 4, 1, 8, 3, 6, 5}

	top, err := binheap.TopK(a, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7}, top, "largest first")

	bottom, err := binheap.BottomK(a, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, bottom, "smallest first")

	all, err := binheap.TopK(a, len(a))
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, all)

	_, err = binheap.TopK(a, 0)
	assert.ErrorIs(t, err, binheap.ErrInvalidK)
	_, err = binheap.BottomK(a, 10)
	assert.ErrorIs(t, err, binheap.ErrInvalidK)
}

func TestKth(t *testing.T) {
	a := []int{3, 2, 1, 5, 6, 4}
	v, err := binheap.KthLargest(a, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = binheap.KthSmallest(a, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = binheap.KthLargest([]int{}, 1)
	assert.ErrorIs(t, err, binheap.ErrInvalidK)
}

// TestTopK_Random compares TopK with a full sort.
func TestTopK_Random(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a := randomInts(seed, 300, 0, 1000)
		k := int(seed) * 5
		got, err := binheap.TopK(a, k)
		require.NoError(t, err)

		want := append([]int(nil), a...)
		sort.Sort(sort.Reverse(sort.IntSlice(want)))
		assert.Equal(t, want[:k], got)
	}
}

func TestPriorityQueue(t *testing.T) {
	q, err := binheap.NewPriorityQueue[int](4, binheap.Max)
	require.NoError(t, err)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, binheap.Max, q.Order())

	for _, v := range []int{3, 7, 1, 5} {
		require.NoError(t, q.Enqueue(v))
	}
	assert.ErrorIs(t, q.Enqueue(9), binheap.ErrFull)

	p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 7, p)

	var got []int
	for q.Len() > 0 {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 5, 3, 1}, got)
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, binheap.ErrEmpty)

	q.Destroy()
	assert.ErrorIs(t, q.Enqueue(1), binheap.ErrDestroyed)

	_, err = binheap.NewPriorityQueue[int](0, binheap.Min)
	assert.ErrorIs(t, err, binheap.ErrInvalidCapacity)
}
