package search

// BinarySearch reports whether key is present in the first n elements of a.
// On StatusFound, Result.Index is the position of the first occurrence of
// key. On StatusNotFound, Result.Index is the insertion point that keeps the
// sequence sorted - identical to LowerBound's index - so one call answers
// both the membership and the insertion position question.
//
// Error results from LowerBound are propagated verbatim, status and index
// both, without inspecting the sequence further.
func BinarySearch(a []int32, n uint64, key int32) Result {
	lb := LowerBound(a, n, key)
	if lb.Status != StatusNotFound && lb.Status != StatusFound {
		return lb
	}

	if lb.Index < n && a[lb.Index] == key {
		return Result{Status: StatusFound, Index: lb.Index}
	}
	return Result{Status: StatusNotFound, Index: lb.Index}
}
