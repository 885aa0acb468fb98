// Package sorting implements the classic comparison and integer sorts over
// Go slices: quick, merge, heap and insertion sort for any element type under
// a three-way comparator, and counting and radix sort for integer slices.
//
// 🚀 Contract
//
//	Every routine returns a NEW slice holding the same multiset of elements,
//	ordered ascending under the comparator. The caller's slice is never
//	modified, so the package is safe to call on values that other code still
//	reads (UI state, cached query results, shared fixtures).
//
// ✨ Variants
//
//	Quick / QuickFunc         – O(n log n) avg, O(n²) worst, not stable
//	Merge / MergeFunc         – O(n log n), O(n) extra space, stable
//	Heap / HeapFunc           – O(n log n), not stable
//	Insertion / InsertionFunc – O(n²), stable, fast on nearly-sorted input
//	Counting                  – O(n + k), k = max-min+1, stable, integers only
//	Radix                     – O(d·n), d = decimal digits of max |x|, integers only
//
// The plain forms use the natural ordering of cmp.Ordered types (cmp.Compare);
// the ...Func forms take an explicit Comparator. Passing a nil Comparator is a
// programmer error and panics.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/sorting"
//
//	out := sorting.Merge([]int{5, 3, 1, 4, 2}) // [1 2 3 4 5]
//
//	byAge := sorting.MergeFunc(people, func(a, b Person) int {
//	    return cmp.Compare(a.Age, b.Age)
//	})
//
// Recursion: none of the routines recurse. Quick sort keeps an explicit stack
// of pending ranges bounded by O(log n); merge sort runs bottom-up.
//
// Counting sort allocates max-min+1 counters. Inputs whose range exceeds
// Options.MaxRange are rejected with ErrRangeTooLarge instead of silently
// allocating gigabytes for a single outlier.
package sorting
