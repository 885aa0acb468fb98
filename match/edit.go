package match

// EditDistance returns the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions and substitutions turning a into b.
//
// Recurrence:
//
//	D[i][0] = i, D[0][j] = j
//	D[i][j] = D[i-1][j-1]                                   if a[i-1] == b[j-1]
//	D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])    otherwise
//
// Memory Modes:
//   - TwoRows (default) — O(m) memory.
//   - FullMatrix        — O(n·m) memory; same result.
//
// Complexity: O(n·m) time.
func EditDistance(a, b string, opts ...Option) int {
	return EditDistanceSeq([]rune(a), []rune(b), opts...)
}

// EditDistanceSeq is EditDistance over any comparable element type.
func EditDistanceSeq[E comparable](a, b []E, opts ...Option) int {
	cfg := buildOptions(opts)
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	if cfg.MemoryMode == FullMatrix {
		return editFull(a, b)
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// editFull fills the complete (n+1)x(m+1) table.
func editFull[E comparable](a, b []E) int {
	n, m := len(a), len(b)
	D := make([][]int, n+1)
	for i := range D {
		D[i] = make([]int, m+1)
		D[i][0] = i
	}
	for j := 0; j <= m; j++ {
		D[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				D[i][j] = D[i-1][j-1]
			} else {
				D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
			}
		}
	}

	return D[n][m]
}
