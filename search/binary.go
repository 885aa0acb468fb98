package search

import "cmp"

// Binary returns an index i with s[i] == target in the ascending slice s,
// or NotFound.
//
// Complexity: O(log n) time, O(1) memory.
func Binary[E cmp.Ordered](s []E, target E) int {
	return BinaryFunc(s, target, cmp.Compare[E])
}

// BinaryFunc is Binary under a three-way comparator c(element, target).
// The slice must be sorted ascending under the same ordering. The target
// type may differ from the element type, so callers can search records by key:
//
//	i := search.BinaryFunc(users, 42, func(u User, id int) int { return cmp.Compare(u.ID, id) })
//
// The first probe that compares equal wins; among duplicates that may be any
// of them. Panics if c is nil.
func BinaryFunc[E, T any](s []E, target T, c func(E, T) int) int {
	if c == nil {
		panic("search: nil comparator")
	}
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := midpoint(lo, hi)
		switch r := c(s[mid], target); {
		case r == 0:
			return mid
		case r < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}

// First returns the smallest index holding target in the ascending slice s,
// or NotFound.
func First[E cmp.Ordered](s []E, target E) int {
	i := lowerBound(s, target)
	if i < len(s) && s[i] == target {
		return i
	}

	return NotFound
}

// Last returns the largest index holding target in the ascending slice s,
// or NotFound.
func Last[E cmp.Ordered](s []E, target E) int {
	i := upperBound(s, target) - 1
	if i >= 0 && s[i] == target {
		return i
	}

	return NotFound
}

// lowerBound returns the first index whose element is not less than target.
func lowerBound[E cmp.Ordered](s []E, target E) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := midpoint(lo, hi)
		if cmp.Less(s[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// upperBound returns the first index whose element is greater than target.
func upperBound[E cmp.Ordered](s []E, target E) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := midpoint(lo, hi)
		if cmp.Less(target, s[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
