package numtheory

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/remyoudompheng/bigfft"
)

// ModPow returns base^exp mod mod by binary exponentiation. Products are
// formed in 128 bits and reduced with bits.Rem64, so any modulus is safe.
// 0^0 is 1 (mod mod).
//
// Errors:
//   - ErrZeroModulus if mod == 0.
//
// Complexity: O(log exp).
func ModPow(base, exp, mod uint64) (uint64, error) {
	if mod == 0 {
		return 0, ErrZeroModulus
	}
	result := 1 % mod
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, mod)
		}
		exp >>= 1
		if exp > 0 {
			base = mulMod(base, base, mod)
		}
	}

	return result, nil
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// Pow returns base^exp exactly, or ErrOverflow when it leaves the int64
// range. The base is only squared while bits of exp remain, so results such
// as (-2)^63 = MinInt64 are reachable.
func Pow(base int64, exp uint64) (int64, error) {
	result := int64(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = mulInt64(result, base); !ok {
				return 0, ErrOverflow
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mulInt64(base, base); !ok {
				return 0, ErrOverflow
			}
		}
	}

	return result, nil
}

// mulInt64 multiplies a and b, reporting false on overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}

	return r, true
}

// PowBig returns base^exp as an arbitrary-precision integer.
func PowBig(base int64, exp uint64) *big.Int {
	result := big.NewInt(1)
	b := big.NewInt(base)
	for exp > 0 {
		if exp&1 == 1 {
			result = bigfft.Mul(result, b)
		}
		exp >>= 1
		if exp > 0 {
			b = bigfft.Mul(b, b)
		}
	}

	return result
}
