package search

import "math"

// Jump searches the ascending slice s by probing every ⌊√n⌋-th element until
// it passes target, then scanning the last block linearly.
//
// Complexity: O(√n) time, O(1) memory.
func Jump[E Number](s []E, target E) int {
	n := len(s)
	if n == 0 {
		return NotFound
	}
	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}

	// 1) find the block whose last element is >= target
	prev, next := 0, step
	for s[min(next, n)-1] < target {
		prev = next
		next += step
		if prev >= n {
			return NotFound
		}
	}

	// 2) linear scan inside [prev, min(next, n))
	for i := prev; i < min(next, n); i++ {
		if s[i] == target {
			return i
		}
		if s[i] > target {
			break
		}
	}

	return NotFound
}
