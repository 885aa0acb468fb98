package dp

import (
	"strconv"
	"strings"
)

// MatrixChain returns the minimum number of scalar multiplications needed to
// evaluate the product A1·A2·…·An, where Ai has shape dims[i-1] x dims[i].
//
//	cost[i][i] = 0
//	cost[i][j] = min over i ≤ k < j of cost[i][k] + cost[k+1][j] + dims[i-1]·dims[k]·dims[j]
//
// A single matrix (len(dims) == 2) costs 0.
//
// Errors:
//   - ErrBadDimensions if len(dims) < 2 or any dimension is ≤ 0.
//
// Complexity: O(n³) time, O(n²) memory.
func MatrixChain(dims []int) (int, error) {
	cost, _, err := matrixChainTables(dims)
	if err != nil {
		return 0, err
	}

	return cost[1][len(dims)-1], nil
}

// MatrixChainOrder returns the optimal cost together with one optimal
// parenthesization, e.g. "((A1A2)A3)". Among equally cheap splits the
// leftmost one is chosen. A lone matrix renders as "A1".
func MatrixChainOrder(dims []int) (int, string, error) {
	cost, split, err := matrixChainTables(dims)
	if err != nil {
		return 0, "", err
	}
	n := len(dims) - 1

	var sb strings.Builder
	writeParens(&sb, split, 1, n)

	return cost[1][n], sb.String(), nil
}

// matrixChainTables fills the cost and split tables, both indexed 1..n.
func matrixChainTables(dims []int) ([][]int, [][]int, error) {
	if len(dims) < 2 {
		return nil, nil, ErrBadDimensions
	}
	for _, d := range dims {
		if d <= 0 {
			return nil, nil, ErrBadDimensions
		}
	}
	n := len(dims) - 1
	cost := make([][]int, n+1)
	split := make([][]int, n+1)
	for i := range cost {
		cost[i] = make([]int, n+1)
		split[i] = make([]int, n+1)
	}

	for length := 2; length <= n; length++ {
		for i := 1; i+length-1 <= n; i++ {
			j := i + length - 1
			cost[i][j] = -1
			for k := i; k < j; k++ {
				c := cost[i][k] + cost[k+1][j] + dims[i-1]*dims[k]*dims[j]
				if cost[i][j] < 0 || c < cost[i][j] {
					cost[i][j] = c
					split[i][j] = k
				}
			}
		}
	}

	return cost, split, nil
}

// writeParens renders the split tree; recursion depth is bounded by n.
func writeParens(sb *strings.Builder, split [][]int, i, j int) {
	if i == j {
		sb.WriteByte('A')
		sb.WriteString(strconv.Itoa(i))
		return
	}
	sb.WriteByte('(')
	writeParens(sb, split, i, split[i][j])
	writeParens(sb, split, split[i][j]+1, j)
	sb.WriteByte(')')
}
