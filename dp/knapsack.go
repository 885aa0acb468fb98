package dp

// Knapsack returns the maximum total value of a subset of items whose total
// weight does not exceed capacity; each item is used at most once.
//
// Recurrence over a single row, capacities visited from high to low so that an
// item is never counted twice:
//
//	best[c] = max(best[c], best[c-w[i]] + v[i])   for c = W … w[i]
//
// Errors (checked in this order):
//   - ErrLengthMismatch   if len(weights) != len(values).
//   - ErrNegativeCapacity if capacity < 0.
//   - ErrNegativeWeight   if any weight < 0.
//
// Items with negative value are never worth taking and do not affect the result.
//
// Complexity: O(n·W) time, O(W) memory.
func Knapsack(weights, values []int, capacity int) (int, error) {
	if err := validateKnapsack(weights, values, capacity); err != nil {
		return 0, err
	}
	best := make([]int, capacity+1)
	for i, w := range weights {
		for c := capacity; c >= w; c-- {
			best[c] = max(best[c], best[c-w]+values[i])
		}
	}

	return best[capacity], nil
}

// KnapsackItems solves the same problem as Knapsack and also returns the
// indices of one optimal item set in ascending order. It keeps the full
// (n+1)x(W+1) table to walk back the decisions.
//
// Complexity: O(n·W) time and memory.
func KnapsackItems(weights, values []int, capacity int) (int, []int, error) {
	if err := validateKnapsack(weights, values, capacity); err != nil {
		return 0, nil, err
	}
	n := len(weights)
	T := make([][]int, n+1)
	for i := range T {
		T[i] = make([]int, capacity+1)
	}
	for i := 1; i <= n; i++ {
		w, v := weights[i-1], values[i-1]
		for c := 0; c <= capacity; c++ {
			T[i][c] = T[i-1][c]
			if w <= c && T[i-1][c-w]+v > T[i][c] {
				T[i][c] = T[i-1][c-w] + v
			}
		}
	}

	var items []int
	c := capacity
	for i := n; i > 0; i-- {
		if T[i][c] != T[i-1][c] {
			items = append(items, i-1)
			c -= weights[i-1]
		}
	}
	for l, r := 0, len(items)-1; l < r; l, r = l+1, r-1 {
		items[l], items[r] = items[r], items[l]
	}

	return T[n][capacity], items, nil
}

func validateKnapsack(weights, values []int, capacity int) error {
	if len(weights) != len(values) {
		return ErrLengthMismatch
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	for _, w := range weights {
		if w < 0 {
			return ErrNegativeWeight
		}
	}

	return nil
}
