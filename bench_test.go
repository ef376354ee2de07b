package search

import "testing"

func benchmarkSequence(n int) []int32 {
	a := make([]int32, n)
	for i := range a {
		a[i] = int32(i * 2)
	}
	return a
}

func BenchmarkLowerBound(b *testing.B) {
	a := benchmarkSequence(1 << 20)
	n := uint64(len(a))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LowerBound(a, n, int32(i&(1<<21-1)))
	}
}

func BenchmarkUpperBound(b *testing.B) {
	a := benchmarkSequence(1 << 20)
	n := uint64(len(a))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		UpperBound(a, n, int32(i&(1<<21-1)))
	}
}

func BenchmarkBinarySearch(b *testing.B) {
	a := benchmarkSequence(1 << 20)
	n := uint64(len(a))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BinarySearch(a, n, int32(i&(1<<21-1)))
	}
}
