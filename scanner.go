package formkit

import "bytes"

// indexFrom returns the first index i >= start where pattern occurs in
// haystack, or -1. Pure byte equality; boundary markers have no escaping
// semantics inside part content.
func indexFrom(haystack []byte, start int, pattern []byte) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], pattern)
	if idx < 0 {
		return -1
	}
	return start + idx
}
