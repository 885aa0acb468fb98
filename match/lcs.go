package match

// LCS returns one longest common subsequence of a and b, compared rune by rune.
// See LCSSeq for the reconstruction rule.
func LCS(a, b string) string {
	return string(LCSSeq([]rune(a), []rune(b)))
}

// LCSSeq returns one longest common subsequence of a and b.
//
// Algorithm Outline:
//  1. Fill L[i][j] = LCS length of a[:i] and b[:j]:
//     L[i][j] = L[i-1][j-1] + 1                  if a[i-1] == b[j-1]
//     L[i][j] = max(L[i-1][j], L[i][j-1])        otherwise
//  2. Walk back from (n, m): on a match take the element and move diagonally;
//     otherwise move UP when L[i-1][j] >= L[i][j-1], else LEFT.
//  3. Reverse the collected elements.
//
// Several subsequences of maximal length usually exist; the "up on ties" rule
// in step 2 fixes which one is returned. The walk is a loop, not recursion.
//
// Complexity: O(n·m) time and memory.
func LCSSeq[E comparable](a, b []E) []E {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}
	L := make([][]int, n+1)
	for i := range L {
		L[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				L[i][j] = L[i-1][j-1] + 1
			} else {
				L[i][j] = max(L[i-1][j], L[i][j-1])
			}
		}
	}
	if L[n][m] == 0 {
		return nil
	}

	out := make([]E, 0, L[n][m])
	i, j := n, m
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out = append(out, a[i-1])
			i--
			j--
		case L[i-1][j] >= L[i][j-1]:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// LCSLength returns the length of a longest common subsequence of a and b
// (rune-wise). With the default TwoRows mode it needs O(min(n, m)) memory.
func LCSLength(a, b string, opts ...Option) int {
	return LCSLengthSeq([]rune(a), []rune(b), opts...)
}

// LCSLengthSeq is LCSLength over any comparable element type.
func LCSLengthSeq[E comparable](a, b []E, opts ...Option) int {
	cfg := buildOptions(opts)
	if cfg.MemoryMode == FullMatrix {
		return len(LCSSeq(a, b))
	}
	if len(b) > len(a) {
		a, b = b, a // rows over the longer input, columns over the shorter
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// LongestCommonSubstring returns the longest contiguous run shared by a and b
// (rune-wise). Runs are tracked by R[i][j] = R[i-1][j-1]+1 on a match, 0
// otherwise; the cells are visited row by row and only a strictly longer run
// replaces the best, so among equally long substrings the one ending first in
// a (then in b) wins.
//
// Complexity: O(n·m) time, O(m) memory.
func LongestCommonSubstring(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	best, end := 0, 0
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best, end = curr[j], i
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}

	return string(ra[end-best : end])
}
