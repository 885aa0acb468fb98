package match

// Naive returns every start offset of pattern in text by checking each
// candidate position directly. O(n·m); the reference the fast routines are
// tested against.
func Naive(text, pattern string) []int {
	return NaiveSeq([]byte(text), []byte(pattern))
}

// NaiveSeq is Naive over any comparable element type.
func NaiveSeq[E comparable](text, pattern []E) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}
	var out []int
	for i := 0; i+m <= n; i++ {
		if equalAt(text, pattern, i) {
			out = append(out, i)
		}
	}

	return out
}

// equalAt reports whether text[i:i+len(pattern)] equals pattern.
func equalAt[E comparable](text, pattern []E, i int) bool {
	for k := range pattern {
		if text[i+k] != pattern[k] {
			return false
		}
	}

	return true
}
