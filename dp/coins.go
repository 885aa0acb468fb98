package dp

import (
	"math/bits"

	"github.com/samber/lo"
)

// CoinChange returns the minimum number of coins summing exactly to amount,
// with an unlimited supply of every denomination, or Unreachable.
//
//	best[0] = 0
//	best[a] = 1 + min(best[a-c]) over denominations c ≤ a
//
// Conventions: amount == 0 needs 0 coins; a negative amount is Unreachable;
// non-positive denominations are ignored (they cannot make progress).
//
// Complexity: O(k·amount) time, O(amount) memory.
func CoinChange(coins []int, amount int) int {
	if amount < 0 {
		return Unreachable
	}
	if amount == 0 {
		return 0
	}
	denoms := usableCoins(coins)
	const inf = int(^uint(0) >> 1)

	best := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		best[a] = inf
		for _, c := range denoms {
			if c <= a && best[a-c] != inf && best[a-c]+1 < best[a] {
				best[a] = best[a-c] + 1
			}
		}
	}
	if best[amount] == inf {
		return Unreachable
	}

	return best[amount]
}

// CoinChangeWays returns the number of distinct multisets of coins summing to
// amount (order does not matter). Duplicate denominations count once.
//
// Errors:
//   - ErrNegativeInput if amount < 0.
//   - ErrOverflow if the count exceeds uint64.
//
// Complexity: O(k·amount) time, O(amount) memory.
func CoinChangeWays(coins []int, amount int) (uint64, error) {
	if amount < 0 {
		return 0, ErrNegativeInput
	}
	ways := make([]uint64, amount+1)
	ways[0] = 1
	for _, c := range usableCoins(coins) {
		for a := c; a <= amount; a++ {
			sum, carry := bits.Add64(ways[a], ways[a-c], 0)
			if carry != 0 {
				return 0, ErrOverflow
			}
			ways[a] = sum
		}
	}

	return ways[amount], nil
}

// usableCoins drops non-positive and duplicate denominations, keeping input order.
func usableCoins(coins []int) []int {
	return lo.Uniq(lo.Filter(coins, func(c int, _ int) bool { return c > 0 }))
}
