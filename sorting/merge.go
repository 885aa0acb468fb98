package sorting

import "cmp"

// Merge returns a stably sorted copy of s under natural ordering.
func Merge[S ~[]E, E cmp.Ordered](s S) S {
	return MergeFunc(s, cmp.Compare[E])
}

// MergeFunc returns a copy of s sorted ascending under c using merge sort.
//
// The sort runs bottom-up: runs of width 1, 2, 4, … are merged pairwise
// between two buffers until one run spans the slice. This produces exactly the
// output of the recursive midpoint split, without recursion.
//
// Stability: on ties the merge takes from the left run first, so elements that
// compare equal keep their input order.
//
// Complexity:
//
//	Time:   O(n log n) in all cases
//	Memory: O(n) auxiliary buffer
func MergeFunc[S ~[]E, E any](s S, c Comparator[E]) S {
	if c == nil {
		panic(nilComparator)
	}
	out := clone(s)
	n := len(out)
	if n < 2 {
		return out
	}

	src, dst := out, make(S, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRuns(dst[lo:hi], src[lo:mid], src[mid:hi], c)
		}
		src, dst = dst, src
	}

	// src holds the last completed pass; make sure the caller gets that buffer.
	if &src[0] != &out[0] {
		copy(out, src)
	}

	return out
}

// mergeRuns merges the sorted runs left and right into dst (len(dst) == len(left)+len(right)).
func mergeRuns[E any](dst, left, right []E, c Comparator[E]) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if c(left[i], right[j]) <= 0 { // left bias keeps the sort stable
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
