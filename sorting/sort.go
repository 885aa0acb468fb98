package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// IsSorted reports whether s is non-decreasing under natural ordering.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return IsSortedFunc(s, cmp.Compare[E])
}

// IsSortedFunc reports whether s is non-decreasing under c.
func IsSortedFunc[S ~[]E, E any](s S, c Comparator[E]) bool {
	if c == nil {
		panic(nilComparator)
	}
	for i := 1; i < len(s); i++ {
		if c(s[i-1], s[i]) > 0 {
			return false
		}
	}

	return true
}

// SortInts returns a sorted copy of the integer slice s using algorithm a.
// It is the single entry point used by callers that pick the algorithm at
// runtime (the algokit CLI). Only Counting can fail (ErrRangeTooLarge).
func SortInts[S ~[]E, E constraints.Integer](s S, a Algorithm, opts ...Option) (S, error) {
	switch a {
	case QuickSort:
		return Quick(s), nil
	case MergeSort:
		return Merge(s), nil
	case HeapSort:
		return Heap(s), nil
	case InsertionSort:
		return Insertion(s), nil
	case CountingSort:
		return Counting(s, opts...)
	case RadixSort:
		return Radix(s), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}
