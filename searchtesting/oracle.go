package searchtesting

// The linear scans below are the obviously correct references the optimized
// searches are validated against. They must stay naive.

// LinearLowerBound returns the first index whose element is not less than
// key, or len(a) when there is none.
func LinearLowerBound(a []int32, key int32) uint64 {
	for i := 0; i < len(a); i++ {
		if a[i] >= key {
			return uint64(i)
		}
	}
	return uint64(len(a))
}

// LinearUpperBound returns the first index whose element is greater than
// key, or len(a) when there is none.
func LinearUpperBound(a []int32, key int32) uint64 {
	for i := 0; i < len(a); i++ {
		if a[i] > key {
			return uint64(i)
		}
	}
	return uint64(len(a))
}
