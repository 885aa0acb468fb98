package match

// Z returns every start offset of pattern in text using the Z-algorithm.
func Z(text, pattern string) []int {
	return ZSeq([]byte(text), []byte(pattern))
}

// ZSeq is Z over any comparable element type.
//
// It runs the Z-algorithm over the virtual sequence pattern ⧺ $ ⧺ text, where
// $ is a position that compares unequal to everything (including itself).
// No Z-box can therefore extend past the pattern, and every text position
// with Z ≥ len(pattern) is a match. Because $ is not a real element there is
// no separator that could collide with the inputs.
//
// Complexity: O(n + m) time and memory.
func ZSeq[E comparable](text, pattern []E) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}
	total := m + 1 + n
	eq := func(i, j int) bool {
		if i == m || j == m { // the separator
			return false
		}
		return elemAt(pattern, text, i) == elemAt(pattern, text, j)
	}

	z := zFill(total, eq)
	var out []int
	for i := m + 1; i < total; i++ {
		if z[i] >= m {
			out = append(out, i-m-1)
		}
	}

	return out
}

// ZArray returns the Z-array of s: z[i] is the length of the longest common
// prefix of s and s[i:]. By convention z[0] = len(s).
func ZArray[E comparable](s []E) []int {
	z := zFill(len(s), func(i, j int) bool { return s[i] == s[j] })
	if len(z) > 0 {
		z[0] = len(s)
	}

	return z
}

// elemAt reads position i of pattern ⧺ $ ⧺ text (i != len(pattern)).
func elemAt[E any](pattern, text []E, i int) E {
	if i < len(pattern) {
		return pattern[i]
	}

	return text[i-len(pattern)-1]
}

// zFill computes the Z-array of a virtual sequence of length n given an
// equality oracle. z[0] is left at 0.
func zFill(n int, eq func(i, j int) bool) []int {
	z := make([]int, n)
	l, r := 0, 0 // [l, r) is the rightmost Z-box found so far
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && eq(z[i], i+z[i]) {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}

	return z
}
