package match

// KMP returns every start offset of pattern in text using Knuth–Morris–Pratt.
func KMP(text, pattern string) []int {
	return KMPSeq([]byte(text), []byte(pattern))
}

// KMPSeq is KMP over any comparable element type.
//
// Algorithm Outline:
//  1. Build the failure table of pattern (FailureTable).
//  2. Scan text once with a matched-prefix length q. On a mismatch fall back
//     to fail[q-1] instead of moving the text cursor backwards; on a full match
//     record i-m+1 and fall back to fail[m-1] so overlapping matches are found.
//
// Complexity: O(n + m) time, O(m) memory.
func KMPSeq[E comparable](text, pattern []E) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}
	fail := FailureTable(pattern)

	var out []int
	q := 0
	for i := 0; i < n; i++ {
		for q > 0 && text[i] != pattern[q] {
			q = fail[q-1]
		}
		if text[i] == pattern[q] {
			q++
		}
		if q == m {
			out = append(out, i-m+1)
			q = fail[q-1]
		}
	}

	return out
}

// FailureTable returns fail where fail[i] is the length of the longest proper
// prefix of pattern[:i+1] that is also a suffix of it. O(m).
func FailureTable[E comparable](pattern []E) []int {
	fail := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = fail[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		fail[i] = k
	}

	return fail
}
