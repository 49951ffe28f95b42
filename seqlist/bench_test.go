package seqlist_test

import (
	"testing"

	"github.com/katalvlaran/classicds/seqlist"
)

// benchmarkList returns a dynamic list holding n pseudo-random values.
func benchmarkList(b *testing.B, n int) *seqlist.List {
	b.Helper()
	l, err := seqlist.FromSlice(seqlist.Dynamic, randomInts(42, n, 0, 1<<20))
	if err != nil {
		b.Fatalf("FromSlice failed: %v", err)
	}

	return l
}

// BenchmarkRotateLeft measures the three-reversal rotation on 10k elements.
func BenchmarkRotateLeft(b *testing.B) {
	l := benchmarkList(b, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.RotateLeft(3_333)
	}
}

// BenchmarkInsertHead measures worst-case inserts at position 1.
func BenchmarkInsertHead(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := seqlist.NewDynamic()
		for j := 0; j < 1_000; j++ {
			if err := l.Insert(1, j); err != nil {
				b.Fatalf("Insert failed: %v", err)
			}
		}
	}
}

// BenchmarkBinarySearch measures lookups in a sorted 100k list.
func BenchmarkBinarySearch(b *testing.B) {
	values := make([]int, 100_000)
	for i := range values {
		values[i] = 2 * i
	}
	l, _ := seqlist.FromSlice(seqlist.Dynamic, values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.BinarySearch((i * 7) % 200_000)
	}
}
