// Package dp_test contains unit tests for the dynamic-programming solvers.
// Closed-form cases are pinned, and knapsack and LIS are cross-checked
// against brute-force references on seeded random inputs.
package dp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/dp"
)

const seedDet = int64(5)

// TestFibonacci verifies known values and the uint64 overflow boundary at n = 93.
func TestFibonacci(t *testing.T) {
	cases := map[int]uint64{0: 0, 1: 1, 2: 1, 10: 55, 50: 12586269025, 93: 12200160415121876738}
	for n, want := range cases {
		got, err := dp.Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "F(%d)", n)
	}

	_, err := dp.Fibonacci(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
	_, err = dp.Fibonacci(94)
	assert.ErrorIs(t, err, dp.ErrOverflow)
}

// TestFibonacciBig verifies F(100) and agreement with Fibonacci wherever both apply.
func TestFibonacciBig(t *testing.T) {
	got, err := dp.FibonacciBig(100)
	require.NoError(t, err)
	assert.Equal(t, "354224848179261915075", got.String())

	// agrees with the fixed-width table where both apply
	for n := 0; n <= 93; n++ {
		small, err := dp.Fibonacci(n)
		require.NoError(t, err)
		big, err := dp.FibonacciBig(n)
		require.NoError(t, err)
		assert.Equal(t, small, big.Uint64(), "F(%d)", n)
	}

	_, err = dp.FibonacciBig(-3)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

// TestKnapsack verifies the classic instances, zero capacity and the empty item set.
func TestKnapsack(t *testing.T) {
	best, err := dp.Knapsack([]int{10, 20, 30}, []int{60, 100, 120}, 50)
	require.NoError(t, err)
	assert.Equal(t, 220, best)

	best, items, err := dp.KnapsackItems([]int{1, 3, 4, 5}, []int{1, 4, 5, 7}, 7)
	require.NoError(t, err)
	assert.Equal(t, 9, best)
	assert.Equal(t, []int{1, 2}, items)

	// zero capacity and no items
	best, err = dp.Knapsack([]int{1}, []int{5}, 0)
	require.NoError(t, err)
	assert.Zero(t, best)
	best, items, err = dp.KnapsackItems(nil, nil, 10)
	require.NoError(t, err)
	assert.Zero(t, best)
	assert.Empty(t, items)
}

// TestKnapsack_Errors ensures malformed inputs map to their sentinel errors.
func TestKnapsack_Errors(t *testing.T) {
	_, err := dp.Knapsack([]int{1, 2}, []int{1}, 3)
	assert.ErrorIs(t, err, dp.ErrLengthMismatch)
	_, err = dp.Knapsack([]int{1}, []int{1}, -1)
	assert.ErrorIs(t, err, dp.ErrNegativeCapacity)
	_, _, err = dp.KnapsackItems([]int{-1}, []int{1}, 3)
	assert.ErrorIs(t, err, dp.ErrNegativeWeight)
}

// bruteKnapsack enumerates every subset.
func bruteKnapsack(w, v []int, capacity int) int {
	best := 0
	for mask := 0; mask < 1<<len(w); mask++ {
		tw, tv := 0, 0
		for i := range w {
			if mask&(1<<i) != 0 {
				tw += w[i]
				tv += v[i]
			}
		}
		if tw <= capacity && tv > best {
			best = tv
		}
	}

	return best
}

// TestKnapsack_MatchesBruteForce compares both knapsack forms with subset enumeration
// and checks that the returned items are ascending, fit and add up to the best value.
func TestKnapsack_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	for trial := 0; trial < 200; trial++ {
		n := r.Intn(10)
		w, v := make([]int, n), make([]int, n)
		for i := range w {
			w[i] = r.Intn(15)
			v[i] = r.Intn(40) - 5
		}
		capacity := r.Intn(40)

		want := bruteKnapsack(w, v, capacity)
		got, err := dp.Knapsack(w, v, capacity)
		require.NoError(t, err)
		require.Equal(t, want, got, "w=%v v=%v W=%d", w, v, capacity)

		best, items, err := dp.KnapsackItems(w, v, capacity)
		require.NoError(t, err)
		require.Equal(t, want, best)
		tw, tv := 0, 0
		for k, i := range items {
			if k > 0 {
				require.Less(t, items[k-1], i)
			}
			tw += w[i]
			tv += v[i]
		}
		require.LessOrEqual(t, tw, capacity)
		require.Equal(t, want, tv)
	}
}

// TestCoinChange covers unreachable amounts, zero and negative amounts and ignored denominations.
func TestCoinChange(t *testing.T) {
	assert.Equal(t, 3, dp.CoinChange([]int{1, 2, 5}, 11))
	assert.Equal(t, dp.Unreachable, dp.CoinChange([]int{2}, 3))
	assert.Equal(t, 0, dp.CoinChange([]int{1}, 0))
	assert.Equal(t, 0, dp.CoinChange(nil, 0))
	assert.Equal(t, dp.Unreachable, dp.CoinChange(nil, 7))
	assert.Equal(t, dp.Unreachable, dp.CoinChange([]int{1}, -4))
	// non-positive denominations are ignored
	assert.Equal(t, 2, dp.CoinChange([]int{0, -3, 3}, 6))
	// greedy would take 4+1+1
	assert.Equal(t, 2, dp.CoinChange([]int{1, 3, 4}, 6))
}

// TestCoinChangeWays verifies combination counts, with duplicate and zero coins ignored.
func TestCoinChangeWays(t *testing.T) {
	cases := []struct {
		coins  []int
		amount int
		want   uint64
	}{
		{[]int{1, 2, 5}, 5, 4},
		{[]int{2}, 3, 0},
		{[]int{1, 2, 5}, 100, 541},
		{[]int{5, 2, 1, 2, 0}, 5, 4}, // duplicates and zero ignored
		{nil, 0, 1},
	}
	for _, tc := range cases {
		got, err := dp.CoinChangeWays(tc.coins, tc.amount)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "coins=%v amount=%d", tc.coins, tc.amount)
	}

	_, err := dp.CoinChangeWays([]int{1}, -1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

// TestCoinChangeWays_Overflow pins the partition count where uint64 runs out.
func TestCoinChangeWays_Overflow(t *testing.T) {
	coins := func(n int) []int {
		c := make([]int, n)
		for i := range c {
			c[i] = i + 1
		}
		return c
	}
	// partitions of 416 still fit, partitions of 417 do not
	got, err := dp.CoinChangeWays(coins(416), 416)
	require.NoError(t, err)
	assert.Equal(t, uint64(17873792969689876004), got)

	_, err = dp.CoinChangeWays(coins(417), 417)
	assert.ErrorIs(t, err, dp.ErrOverflow)
}

// quadraticLIS is the O(n²) reference.
func quadraticLIS(s []int) int {
	best := 0
	L := make([]int, len(s))
	for i := range s {
		L[i] = 1
		for j := 0; j < i; j++ {
			if s[j] < s[i] && L[j]+1 > L[i] {
				L[i] = L[j] + 1
			}
		}
		best = max(best, L[i])
	}

	return best
}

// TestLIS verifies length and reconstruction, including equal elements and strings.
func TestLIS(t *testing.T) {
	s := []int{10, 9, 2, 5, 3, 7, 101, 18}
	assert.Equal(t, 4, dp.LIS(s))
	assert.Equal(t, []int{2, 3, 7, 18}, dp.LISSequence(s))

	assert.Zero(t, dp.LIS([]int{}))
	assert.Nil(t, dp.LISSequence([]int{}))
	assert.Equal(t, 1, dp.LIS([]int{7, 7, 7}))
	assert.Equal(t, []int{7}, dp.LISSequence([]int{7, 7, 7}))
	assert.Equal(t, 6, dp.LIS([]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}))
	assert.Equal(t, 3, dp.LIS([]string{"b", "a", "c", "d"}))
}

// TestLIS_MatchesQuadratic compares LIS with the O(n²) reference and checks that
// LISSequence is a strictly increasing subsequence of the input.
func TestLIS_MatchesQuadratic(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	for trial := 0; trial < 300; trial++ {
		s := make([]int, r.Intn(40))
		for i := range s {
			s[i] = r.Intn(20)
		}
		want := quadraticLIS(s)
		require.Equal(t, want, dp.LIS(s), "%v", s)

		seq := dp.LISSequence(s)
		require.Len(t, seq, want)
		// strictly increasing and a subsequence of s
		j := 0
		for k, x := range seq {
			if k > 0 {
				require.Less(t, seq[k-1], x)
			}
			for j < len(s) && s[j] != x {
				j++
			}
			require.Less(t, j, len(s), "%v is not a subsequence of %v", seq, s)
			j++
		}
	}
}

// TestMatrixChain verifies optimal costs, parenthesizations and dimension validation.
func TestMatrixChain(t *testing.T) {
	cases := []struct {
		dims   []int
		cost   int
		parens string
	}{
		{[]int{10, 30, 5, 60}, 4500, "((A1A2)A3)"},
		{[]int{40, 20, 30, 10, 30}, 26000, ""},
		{[]int{1, 2, 3, 4, 3}, 30, ""},
		{[]int{10, 20, 30}, 6000, "(A1A2)"},
		{[]int{5, 7}, 0, "A1"},
	}
	for _, tc := range cases {
		got, err := dp.MatrixChain(tc.dims)
		require.NoError(t, err)
		assert.Equal(t, tc.cost, got, "%v", tc.dims)

		cost, parens, err := dp.MatrixChainOrder(tc.dims)
		require.NoError(t, err)
		assert.Equal(t, tc.cost, cost)
		if tc.parens != "" {
			assert.Equal(t, tc.parens, parens)
		}
	}

	for _, bad := range [][]int{nil, {3}, {2, 0, 4}, {2, -1}} {
		_, err := dp.MatrixChain(bad)
		assert.ErrorIs(t, err, dp.ErrBadDimensions, "%v", bad)
		_, _, err = dp.MatrixChainOrder(bad)
		assert.ErrorIs(t, err, dp.ErrBadDimensions, "%v", bad)
	}
}

// TestRodCutting verifies the textbook price table, short price lists and input validation.
func TestRodCutting(t *testing.T) {
	prices := []int{1, 5, 8, 9, 10, 17, 17, 20}
	for length, want := range map[int]int{0: 0, 1: 1, 4: 10, 8: 22} {
		got, err := dp.RodCutting(prices, length)
		require.NoError(t, err)
		assert.Equal(t, want, got, "length %d", length)
	}

	// only pieces of length 1 and 2 are sellable
	got, err := dp.RodCutting([]int{1, 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, 11, got)

	got, err = dp.RodCutting(nil, 5)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = dp.RodCutting(prices, -1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
	_, err = dp.RodCutting([]int{1, -2}, 3)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}
