package fenwick_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classicds/fenwick"
)

func TestTree2D(t *testing.T) {
	m := [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	tr, err := fenwick.From2D(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 4, tr.Cols())

	total, err := tr.PrefixSum(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 78, total)

	sub, err := tr.RangeSum(1, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 6+7+10+11, sub)

	for r := range m {
		for c := range m[r] {
			v, err := tr.Get(r, c)
			require.NoError(t, err)
			assert.Equal(t, m[r][c], v)
		}
	}

	require.NoError(t, tr.Update(0, 0, 10))
	require.NoError(t, tr.Set(2, 3, 0))
	total, err = tr.PrefixSum(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 78+10-12, total)

	zero, err := tr.PrefixSum(-1, 3)
	require.NoError(t, err)
	assert.Zero(t, zero)
}

func TestTree2D_Errors(t *testing.T) {
	_, err := fenwick.From2D([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, fenwick.ErrNonRectangular)
	_, err = fenwick.New2D(-1, 2)
	assert.ErrorIs(t, err, fenwick.ErrInvalidSize)

	tr, err := fenwick.New2D(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, tr.Update(2, 0, 1), fenwick.ErrOutOfRange)
	_, err = tr.RangeSum(1, 0, 0, 1)
	assert.ErrorIs(t, err, fenwick.ErrInvalidRange)
	_, err = tr.RangeSum(0, 0, 1, 2)
	assert.ErrorIs(t, err, fenwick.ErrOutOfRange)

	tr.Destroy()
	assert.ErrorIs(t, tr.Update(0, 0, 1), fenwick.ErrDestroyed)
	_, err = tr.PrefixSum(0, 0)
	assert.ErrorIs(t, err, fenwick.ErrDestroyed)
}

func TestRangeCounter(t *testing.T) {
	c, err := fenwick.NewRangeCounter(100)
	require.NoError(t, err)
	for _, v := range []int{5, 10, 10, 42, 99, 100, 0} {
		require.NoError(t, c.Add(v))
	}
	assert.Equal(t, 7, c.Total())
	assert.Equal(t, 2, c.Frequency(10))
	assert.Equal(t, 100, c.MaxValue())

	n, err := c.CountInRange(5, 42)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, c.Remove(10))
	assert.ErrorIs(t, c.Remove(11), fenwick.ErrNotPresent)
	n, err = c.CountInRange(0, 100)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 1, c.Frequency(10))
	assert.Zero(t, c.Frequency(-3))

	assert.ErrorIs(t, c.Add(101), fenwick.ErrOutOfRange)
	_, err = c.CountInRange(50, 40)
	assert.ErrorIs(t, err, fenwick.ErrInvalidRange)

	_, err = fenwick.NewRangeCounter(-1)
	assert.ErrorIs(t, err, fenwick.ErrInvalidSize)

	c.Destroy()
	assert.ErrorIs(t, c.Add(1), fenwick.ErrDestroyed)
}

func TestProcessOffline(t *testing.T) {
	a := []int{3, 1, 4, 1, 5, 9, 2, 6}
	qs := []fenwick.Query{
		{Left: 0, Right: 7, ID: 1},
		{Left: 2, Right: 4, ID: 2},
		{Left: 5, Right: 5, ID: 3},
	}
	require.NoError(t, fenwick.ProcessOffline(a, qs))
	assert.Equal(t, 31, qs[0].Result)
	assert.Equal(t, 10, qs[1].Result)
	assert.Equal(t, 9, qs[2].Result)
	assert.Equal(t, 2, qs[1].ID)

	bad := []fenwick.Query{{Left: 0, Right: 1, ID: 1}, {Left: 3, Right: 2, ID: 2}}
	assert.ErrorIs(t, fenwick.ProcessOffline(a, bad), fenwick.ErrInvalidRange)
	assert.Zero(t, bad[0].Result, "no result is written when validation fails")
	bad = []fenwick.Query{{Left: 0, Right: 8}}
	assert.ErrorIs(t, fenwick.ProcessOffline(a, bad), fenwick.ErrOutOfRange)
}

func TestCountInversions(t *testing.T) {
	a := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	assert.Equal(t, fenwick.CountInversionsNaive(a), fenwick.CountInversions(a))
	assert.Equal(t, int64(10), fenwick.CountInversions([]int{5, 4, 3, 2, 1}))
	assert.Equal(t, int64(10), fenwick.CountInversionsNaive([]int{5, 4, 3, 2, 1}))
	assert.Zero(t, fenwick.CountInversions(nil))
	assert.Zero(t, fenwick.CountInversions([]int{7, 7, 7}))
}

// TestCountInversions_MatchesBaseline cross-checks every size up to 100.
func TestCountInversions_MatchesBaseline(t *testing.T) {
	for n := 0; n <= 100; n++ {
		a := randomInts(int64(n)+1, n, -20, 20)
		require.Equal(t, fenwick.CountInversionsNaive(a), fenwick.CountInversions(a), "n=%d", n)
	}
}

func TestSerialization_RoundTrip(t *testing.T) {
	a := randomInts(9, 64, -1000, 1000)
	tr := mustTree(t, a...)

	var buf bytes.Buffer
	n, err := tr.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(8+4*65), n)

	back, err := fenwick.Decode(&buf)
	require.NoError(t, err)
	assertSameTree(t, tr, back)

	path := filepath.Join(t.TempDir(), "tree.bin")
	require.NoError(t, tr.Save(path))
	loaded, err := fenwick.Load(path)
	require.NoError(t, err)
	assertSameTree(t, tr, loaded)

	data, err := tr.MarshalBinary()
	require.NoError(t, err)
	var un fenwick.Tree
	require.NoError(t, un.UnmarshalBinary(data))
	assertSameTree(t, tr, &un)
}

// TestSerialization_Layout pins the byte layout of a tiny tree.
func TestSerialization_Layout(t *testing.T) {
	tr := mustTree(t, 1, -2)
	data, err := tr.MarshalBinary()
	require.NoError(t, err)
	want := []byte{
		2, 0, 0, 0, // size
		3, 0, 0, 0, // capacity
		0, 0, 0, 0, // tree[0]
		1, 0, 0, 0, // tree[1] = A[0]
		0xff, 0xff, 0xff, 0xff, // tree[2] = A[0]+A[1] = -1
	}
	assert.Equal(t, want, data)
}

func TestSerialization_Errors(t *testing.T) {
	_, err := fenwick.Decode(bytes.NewReader([]byte{1, 0, 0}))
	assert.ErrorIs(t, err, fenwick.ErrCorrupt)
	_, err = fenwick.Decode(bytes.NewReader([]byte{2, 0, 0, 0, 3, 0, 0, 0, 0, 0}))
	assert.ErrorIs(t, err, fenwick.ErrCorrupt)
	_, err = fenwick.Decode(bytes.NewReader([]byte{2, 0, 0, 0, 9, 0, 0, 0}))
	assert.ErrorIs(t, err, fenwick.ErrCorrupt)

	data, err := mustTree(t, 1).MarshalBinary()
	require.NoError(t, err)
	var tr fenwick.Tree
	assert.ErrorIs(t, tr.UnmarshalBinary(append(data, 0)), fenwick.ErrCorrupt)

	big := mustTree(t, 1<<40)
	_, err = big.MarshalBinary()
	assert.ErrorIs(t, err, fenwick.ErrValueOverflow)

	_, err = fenwick.Load(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

// assertSameTree checks two trees answer every prefix query identically.
func assertSameTree(t *testing.T, want, got *fenwick.Tree) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	for i := -1; i < want.Len(); i++ {
		w, err := want.PrefixSum(i)
		require.NoError(t, err)
		g, err := got.PrefixSum(i)
		require.NoError(t, err)
		require.Equal(t, w, g, "prefix %d", i)
	}
}
