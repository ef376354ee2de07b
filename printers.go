package search

import "fmt"

// debug utilities

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not-found"
	case StatusNullInput:
		return "null-input"
	case StatusBadLength:
		return "bad-length"
	default:
		return fmt.Sprintf("status(%d)", uint32(s))
	}
}
