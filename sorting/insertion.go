package sorting

import "cmp"

// Insertion returns a stably sorted copy of s using insertion sort.
func Insertion[S ~[]E, E cmp.Ordered](s S) S {
	return InsertionFunc(s, cmp.Compare[E])
}

// InsertionFunc returns a copy of s sorted ascending under c using insertion sort.
// Each key is shifted left past every element strictly greater than it, so equal
// keys never pass each other (stable).
//
// Complexity: O(n²) worst, O(n) on already-sorted input; O(1) extra memory.
func InsertionFunc[S ~[]E, E any](s S, c Comparator[E]) S {
	if c == nil {
		panic(nilComparator)
	}
	out := clone(s)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && c(out[j], key) > 0 {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}

	return out
}
