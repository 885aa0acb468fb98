package numtheory

import (
	"math"
	"math/bits"

	"modernc.org/mathutil"
)

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) = 0. The only unrepresentable result, 2^63 for
// GCD(MinInt64, 0) and GCD(MinInt64, MinInt64), comes back as MinInt64.
func GCD(a, b int64) int64 {
	return int64(mathutil.GCDUint64(abs64(a), abs64(b)))
}

// LCM returns the least common multiple of |a| and |b|, computed as
// |a|/gcd·|b| to keep the intermediate small. LCM(x, 0) = 0.
//
// Errors:
//   - ErrOverflow if the result exceeds MaxInt64.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	ua, ub := abs64(a), abs64(b)
	hi, lo := bits.Mul64(ua/mathutil.GCDUint64(ua, ub), ub)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(lo), nil
}

// ExtendedGCD returns g = gcd(a, b) ≥ 0 together with Bézout coefficients
// satisfying a·x + b·y = g. It runs the iterative form of the extended
// Euclidean algorithm; inputs are expected within ±2^62 so that the
// coefficients cannot overflow.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}

// ModInverse returns the x in [0, m) with a·x ≡ 1 (mod m).
//
// Errors:
//   - ErrZeroModulus   if m ≤ 0.
//   - ErrNotInvertible if gcd(a, m) ≠ 1.
func ModInverse(a, m int64) (int64, error) {
	if m <= 0 {
		return 0, ErrZeroModulus
	}
	a %= m
	if a < 0 {
		a += m
	}
	g, x, _ := ExtendedGCD(a, m)
	if g != 1 {
		return 0, ErrNotInvertible
	}
	x %= m
	if x < 0 {
		x += m
	}

	return x, nil
}
