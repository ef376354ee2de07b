package search

// Status is the outcome code carried by every Result. The numeric values are
// stable and part of the contract: results from this package compare equal,
// value for value, with any other implementation of the same vocabulary.
type Status uint32

const (
	// StatusFound reports that the key is present at Result.Index. Only
	// BinarySearch produces it; see the package doc for why the bound
	// operations never do.
	StatusFound Status = iota

	// StatusNotFound reports a completed search with no contract error. For
	// LowerBound and UpperBound it is the only success status. For
	// BinarySearch it additionally means the key is absent and Result.Index
	// is the insertion point.
	StatusNotFound

	// StatusNullInput reports that the sequence was nil while the declared
	// length was positive. The operation reads nothing and returns index 0.
	StatusNullInput

	// StatusBadLength is reserved for future length validation. It is never
	// produced.
	StatusBadLength
)

// Result is the sole output of the search operations. Index is always in
// [0, n]: the position of a matching element when the status says so, and
// otherwise the unique insertion point that keeps the sequence sorted.
type Result struct {
	Status Status
	Index  uint64
}
