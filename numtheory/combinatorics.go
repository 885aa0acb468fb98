package numtheory

import (
	"math/big"
	"math/bits"

	"github.com/remyoudompheng/bigfft"
)

// productLeaf is the range width below which FactorialBig multiplies linearly.
const productLeaf = 16

// Factorial returns n!.
//
// Errors:
//   - ErrNegativeInput if n < 0.
//   - ErrOverflow if n > 20; use FactorialBig.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxFactorial {
		return 0, ErrOverflow
	}
	f := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		f *= i
	}

	return f, nil
}

// FactorialBig returns n! exactly. The factors 1..n are multiplied as a
// balanced product tree so that the large multiplications near the root
// have operands of similar size, which is where bigfft pays off.
func FactorialBig(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}
	if n < 2 {
		return big.NewInt(1), nil
	}

	return productRange(2, uint64(n)), nil
}

// productRange returns lo·(lo+1)·…·hi for lo ≤ hi.
func productRange(lo, hi uint64) *big.Int {
	if hi-lo < productLeaf {
		p := new(big.Int).SetUint64(lo)
		var f big.Int
		for i := lo + 1; i <= hi; i++ {
			p.Mul(p, f.SetUint64(i))
		}
		return p
	}
	mid := lo + (hi-lo)/2

	return bigfft.Mul(productRange(lo, mid), productRange(mid+1, hi))
}

// Combinations returns C(n, r), the number of r-element subsets of an
// n-set. C(n, r) = 0 when r > n.
//
// It runs the multiplicative formula over k = min(r, n-r) steps:
//
//	c_i = c_{i-1} · (n-k+i) / i
//
// Each c_i equals C(n-k+i, i), so the division is exact; the product is
// held in 128 bits and the quotient only overflows when the answer does.
//
// Errors:
//   - ErrNegativeInput if n < 0 or r < 0.
//   - ErrOverflow if C(n, r) > MaxUint64.
func Combinations(n, r int) (uint64, error) {
	if n < 0 || r < 0 {
		return 0, ErrNegativeInput
	}
	if r > n {
		return 0, nil
	}
	k := uint64(min(r, n-r))
	base := uint64(n) - k

	c := uint64(1)
	for i := uint64(1); i <= k; i++ {
		hi, lo := bits.Mul64(c, base+i)
		if hi >= i {
			return 0, ErrOverflow
		}
		c, _ = bits.Div64(hi, lo, i)
	}

	return c, nil
}

// Permutations returns P(n, r) = n!/(n-r)!, the number of ordered
// r-element arrangements drawn from n. P(n, r) = 0 when r > n.
//
// Errors:
//   - ErrNegativeInput if n < 0 or r < 0.
//   - ErrOverflow if the product exceeds MaxUint64.
func Permutations(n, r int) (uint64, error) {
	if n < 0 || r < 0 {
		return 0, ErrNegativeInput
	}
	if r > n {
		return 0, nil
	}
	p := uint64(1)
	for i := uint64(n - r + 1); i <= uint64(n); i++ {
		hi, lo := bits.Mul64(p, i)
		if hi != 0 {
			return 0, ErrOverflow
		}
		p = lo
	}

	return p, nil
}
