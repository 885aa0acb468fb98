package search

// Exponential searches the ascending slice s by doubling a bound (1, 2, 4, …)
// until s[bound] >= target, then binary-searching [bound/2, bound].
// It is fastest when the target sits near the front of a long slice.
//
// Complexity: O(log i) time where i is the target's position; O(1) memory.
func Exponential[E Number](s []E, target E) int {
	n := len(s)
	if n == 0 {
		return NotFound
	}
	if s[0] == target {
		return 0
	}

	bound := 1
	for bound < n && s[bound] < target {
		bound *= 2
	}
	lo, hi := bound/2, min(bound, n-1)
	for lo <= hi {
		mid := midpoint(lo, hi)
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}
