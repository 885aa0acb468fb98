package search

import "golang.org/x/exp/constraints"

// NotFound is returned by every routine when the target is absent.
const NotFound = -1

// Number is the element constraint of the arithmetic searches
// (Jump, Interpolation, Exponential).
type Number interface {
	constraints.Integer | constraints.Float
}

// midpoint returns ⌊(lo+hi)/2⌋ without overflowing int.
func midpoint(lo, hi int) int {
	return int(uint(lo+hi) >> 1)
}
