package sorting

import "cmp"

// Quick returns a sorted copy of s using quick sort under natural ordering.
// See QuickFunc.
func Quick[S ~[]E, E cmp.Ordered](s S) S {
	return QuickFunc(s, cmp.Compare[E])
}

// QuickFunc returns a copy of s sorted ascending under c using quick sort.
//
// Algorithm Outline:
//  1. Copy s; all work happens on the copy.
//  2. Pop a range [lo, hi] from an explicit stack.
//  3. Partition around the last element (Lomuto): everything < pivot moves left,
//     the pivot lands at its final index p.
//  4. Push the larger of [lo, p-1] / [p+1, hi] and keep working on the smaller.
//
// Step 4 keeps the pending-range stack at O(log n) entries even on adversarial
// input (already sorted, all equal), where the partition degenerates to n-1 / 0.
//
// Complexity:
//
//	Time:   O(n log n) average, O(n²) worst (last-element pivot on sorted input)
//	Memory: O(n) for the copy + O(log n) stack
//
// Not stable.
func QuickFunc[S ~[]E, E any](s S, c Comparator[E]) S {
	if c == nil {
		panic(nilComparator)
	}
	out := clone(s)
	if len(out) < 2 {
		return out
	}

	type span struct{ lo, hi int }
	stack := []span{{0, len(out) - 1}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lo, hi := r.lo, r.hi
		for lo < hi {
			p := partition(out, lo, hi, c)
			// continue on the smaller side, defer the larger one
			if p-lo < hi-p {
				stack = append(stack, span{p + 1, hi})
				hi = p - 1
			} else {
				stack = append(stack, span{lo, p - 1})
				lo = p + 1
			}
		}
	}

	return out
}

// partition places s[hi] at its final position in s[lo..hi] and returns that index.
func partition[E any](s []E, lo, hi int, c Comparator[E]) int {
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if c(s[j], pivot) < 0 {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}
