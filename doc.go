package search

/*

# Order preserving search primitives for sorted int32 sequences

This package provides the three classic order preserving searches over a
sorted sequence of 32-bit signed integers:

- LowerBound: the first index whose element is not less than the key
- UpperBound: the first index whose element is greater than the key
- BinarySearch: membership, plus the insertion point when absent

It mirrors the style of our other primitive libraries:

- small, composable functions
- explicit unsigned index arithmetic
- a burden of knowledge on the caller for hot paths

## Why these three and not the stdlib

sort.Search and slices.BinarySearch are fine general tools. This package
exists for callers that need the exact result vocabulary below - a status
code and an index travelling together as one value - and need the boundary
behaviour to be auditable at every edge: empty input, single element,
all-equal runs, and the int32 extremes. Every operation is a pure function
of its inputs, allocates nothing, and completes in O(log n) probes.

## The candidate window

All three operations reduce to one loop shape: a candidate window
[first, first+length) that starts as the whole sequence and halves each
step. The probe index is first + length/2, which is always inside the
window, and the window is always a sub range of [0, n). Two consequences
fall out of that and are relied on throughout:

 1. no probe index ever reaches n, so no out of range read is possible
 2. all window arithmetic is on unsigned values bounded by the caller
    supplied n, so no addition or subtraction can overflow

This is the same formulation used by libstdc++'s std::lower_bound and
described in Bentley's Programming Pearls column on binary search.

## The status vocabulary

Results carry a Status and an Index. The quirk to internalise: LowerBound
and UpperBound never report StatusFound. Their success status is always
StatusNotFound, which for them means "completed with no contract error",
not "key absent". The bound index is meaningful either way - it is
simultaneously the position of the first matching element (if any) and the
insertion point that keeps the sequence sorted. Callers that want presence
use BinarySearch, which compares the element at the lower bound with the
key and upgrades the status to StatusFound on equality.

The numeric values of the Status constants are part of the contract and
are stable. StatusBadLength is reserved and never produced.

## The burden of knowledge

The operations take the sequence as a slice plus a separately declared
length n. This is deliberate: a caller may pass a nil sequence with n == 0
(an absent-and-empty sequence, a success) and the package must distinguish
that from a nil sequence with n > 0 (a contract violation, reported as
StatusNullInput without touching memory). Two obligations stay with the
caller and are not checked:

- the first n elements must be sorted in non-decreasing order. Violating
  this yields an unspecified but in bounds index; the operations still
  terminate and never read outside [0, n).
- n must not exceed the slice length.

Checking sortedness would cost the logarithmic bound, so it is not done.

*/
