package search

// LowerBound returns the smallest index i in [0, n] such that every element
// of a before i is strictly less than key and every element at or after i,
// if any, is not less than key. That index always exists and is unique for
// a sorted sequence, including when key is absent and when n is zero.
//
// The success status is always StatusNotFound: for the bound operations it
// means "no contract error", never "key absent". Presence is established by
// comparing a[i] with key, which is exactly what BinarySearch does.
//
// a may be nil only when n is zero; nil with n > 0 is reported as
// StatusNullInput with index 0 and no element is read. The first n elements
// must be sorted non-decreasing and n must not exceed the slice length; both
// are caller obligations and are not checked.
func LowerBound(a []int32, n uint64, key int32) Result {
	if a == nil && n > 0 {
		return Result{Status: StatusNullInput, Index: 0}
	}

	// The candidate window is [first, first+length), always a sub range of
	// [0, n), so the probe index never reaches n and no unsigned arithmetic
	// here can overflow.
	var first uint64
	length := n
	for length > 0 {
		half := length >> 1
		mid := first + half
		if a[mid] < key {
			first = mid + 1
			length = length - half - 1
		} else {
			length = half
		}
	}

	return Result{Status: StatusNotFound, Index: first}
}
