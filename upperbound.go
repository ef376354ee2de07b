package search

// UpperBound returns the smallest index i in [0, n] such that every element
// of a before i is less than or equal to key and every element at or after
// i, if any, is strictly greater than key. It is LowerBound with the probe
// comparison relaxed from < to <=; everything else, including the
// StatusNotFound-on-success convention and the nil handling, is identical.
func UpperBound(a []int32, n uint64, key int32) Result {
	if a == nil && n > 0 {
		return Result{Status: StatusNullInput, Index: 0}
	}

	var first uint64
	length := n
	for length > 0 {
		half := length >> 1
		mid := first + half
		if a[mid] <= key {
			first = mid + 1
			length = length - half - 1
		} else {
			length = half
		}
	}

	return Result{Status: StatusNotFound, Index: first}
}
