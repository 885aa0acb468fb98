package dp

import (
	"cmp"
	"slices"
)

// LIS returns the length of a longest strictly increasing subsequence of s.
//
// Patience sorting: tails[k] holds the smallest possible last element of an
// increasing subsequence of length k+1. Each element replaces the first tail
// that is >= it (binary search), or extends tails when it beats them all.
// Using ">=" rather than ">" is what makes the subsequence strict.
//
// Complexity: O(n log n) time, O(n) memory.
func LIS[E cmp.Ordered](s []E) int {
	tails := make([]E, 0, len(s))
	for _, x := range s {
		i, _ := slices.BinarySearch(tails, x)
		if i == len(tails) {
			tails = append(tails, x)
		} else {
			tails[i] = x
		}
	}

	return len(tails)
}

// LISSequence returns one longest strictly increasing subsequence of s.
// It tracks, per tail, the index of the element that ended it and, per
// element, its predecessor; the answer is read back from the last tail.
// Among several longest subsequences it returns the one whose elements were
// placed last, i.e. the lexicographically smallest tail at every length.
//
// Complexity: O(n log n) time, O(n) memory.
func LISSequence[E cmp.Ordered](s []E) []E {
	if len(s) == 0 {
		return nil
	}
	tailIdx := make([]int, 0, len(s)) // index into s of each tail
	parent := make([]int, len(s))
	for i, x := range s {
		k, _ := slices.BinarySearchFunc(tailIdx, x, func(ti int, v E) int {
			return cmp.Compare(s[ti], v)
		})
		if k > 0 {
			parent[i] = tailIdx[k-1]
		} else {
			parent[i] = -1
		}
		if k == len(tailIdx) {
			tailIdx = append(tailIdx, i)
		} else {
			tailIdx[k] = i
		}
	}

	out := make([]E, len(tailIdx))
	for k, i := len(out)-1, tailIdx[len(tailIdx)-1]; k >= 0; k, i = k-1, parent[i] {
		out[k] = s[i]
	}

	return out
}
