package sorting

import "cmp"

// Heap returns a sorted copy of s using heap sort under natural ordering.
func Heap[S ~[]E, E cmp.Ordered](s S) S {
	return HeapFunc(s, cmp.Compare[E])
}

// HeapFunc returns a copy of s sorted ascending under c using heap sort.
//
// Algorithm Outline:
//  1. Heapify the copy into a max-heap keyed by c (sift-down from the last parent).
//  2. Repeatedly swap the root (current maximum) to the end of the unsorted
//     prefix and sift the new root down over the shrunken heap.
//
// Complexity:
//
//	Time:   O(n log n) in all cases
//	Memory: O(1) beyond the copy
//
// Not stable.
func HeapFunc[S ~[]E, E any](s S, c Comparator[E]) S {
	if c == nil {
		panic(nilComparator)
	}
	out := clone(s)
	n := len(out)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, i, n, c)
	}
	for end := n - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		siftDown(out, 0, end, c)
	}

	return out
}

// siftDown restores the max-heap property for the subtree rooted at root within s[:n].
func siftDown[E any](s []E, root, n int, c Comparator[E]) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && c(s[child], s[child+1]) < 0 {
			child++
		}
		if c(s[root], s[child]) >= 0 {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
