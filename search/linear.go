package search

// Linear returns the first index i with s[i] == target, or NotFound.
// It needs no ordering, only equality. O(n).
func Linear[E comparable](s []E, target E) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return NotFound
}
