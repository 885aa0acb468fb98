package dp

import "math/big"

// Fibonacci returns F(n) with F(0)=0, F(1)=1, filling the table F[0..n]
// bottom-up.
//
// Errors:
//   - ErrNegativeInput if n < 0.
//   - ErrOverflow if n > 93 (F(94) exceeds uint64); use FibonacciBig.
//
// Complexity: O(n) time, O(n) memory.
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxFibonacci {
		return 0, ErrOverflow
	}
	if n < 2 {
		return uint64(n), nil
	}
	table := make([]uint64, n+1)
	table[1] = 1
	for i := 2; i <= n; i++ {
		table[i] = table[i-1] + table[i-2]
	}

	return table[n], nil
}

// FibonacciBig returns F(n) as an arbitrary-precision integer. Only the last
// two values are kept, since big.Int tables would cost O(n²) bits.
func FibonacciBig(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}

	return a, nil
}
