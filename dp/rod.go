package dp

// RodCutting returns the maximum revenue obtainable by cutting a rod of the
// given length into pieces, where prices[i] is the price of a piece of length
// i+1. Pieces longer than len(prices) have no price and cannot be sold, so a
// rod is always cut into pieces of at most len(prices); with no prices at all
// the revenue is 0.
//
//	best[0] = 0
//	best[l] = max over 1 ≤ p ≤ min(l, len(prices)) of prices[p-1] + best[l-p]
//
// Errors:
//   - ErrNegativeInput if length < 0 or any price is negative.
//
// Complexity: O(length·len(prices)) time, O(length) memory.
func RodCutting(prices []int, length int) (int, error) {
	if length < 0 {
		return 0, ErrNegativeInput
	}
	for _, p := range prices {
		if p < 0 {
			return 0, ErrNegativeInput
		}
	}
	if len(prices) == 0 {
		return 0, nil
	}

	best := make([]int, length+1)
	for l := 1; l <= length; l++ {
		for p := 1; p <= min(l, len(prices)); p++ {
			best[l] = max(best[l], prices[p-1]+best[l-p])
		}
	}

	return best[length], nil
}
