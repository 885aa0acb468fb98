package search

// Interpolation searches the ascending slice s by estimating the probe position
// from the target's relative distance between the current bounds:
//
//	pos = lo + (target - s[lo]) * (hi - lo) / (s[hi] - s[lo])
//
// The estimate is computed in float64, so it cannot overflow for any integer
// width. When s[lo] == s[hi] the range is constant and a single comparison
// decides. A NaN target never matches.
//
// Complexity:
//
//	Time:   O(log log n) on uniformly distributed keys, O(n) on skewed ones
//	Memory: O(1)
func Interpolation[E Number](s []E, target E) int {
	lo, hi := 0, len(s)-1
	for lo <= hi && target >= s[lo] && target <= s[hi] {
		if s[lo] == s[hi] {
			if s[lo] == target {
				return lo
			}
			return NotFound
		}

		frac := (float64(target) - float64(s[lo])) / (float64(s[hi]) - float64(s[lo]))
		pos := lo + int(frac*float64(hi-lo))
		// rounding can land a hair outside; clamp to keep the invariant lo <= pos <= hi
		pos = max(lo, min(pos, hi))

		switch {
		case s[pos] == target:
			return pos
		case s[pos] < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}

	return NotFound
}
