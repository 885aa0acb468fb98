// Package search locates a target in a slice and returns its index, or
// NotFound (-1) when the target is absent. A miss is never an error.
//
// Routines and preconditions:
//
//	Binary / BinaryFunc – O(log n), slice sorted under the same ordering
//	First / Last        – O(log n), leftmost / rightmost match in a sorted slice
//	Linear              – O(n), no precondition, value equality
//	Jump                – O(√n), ascending numeric slice
//	Interpolation       – O(log log n) avg on uniform data, O(n) worst, ascending numeric slice
//	Exponential         – O(log n), ascending numeric slice
//
// Duplicates: except for First and Last, any index holding an equal element
// may be returned. Violating a sortedness precondition yields an unspecified
// index (possibly NotFound) but never a panic or an endless loop.
//
//	i := search.Binary([]int{1, 3, 5, 7}, 5) // 2
package search
