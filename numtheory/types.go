package numtheory

import "errors"

// Sentinel errors returned by the numtheory package.
var (
	// ErrNegativeInput indicates a negative argument where only n ≥ 0 is defined.
	ErrNegativeInput = errors.New("numtheory: negative input")

	// ErrOverflow indicates that the exact result does not fit the return type.
	ErrOverflow = errors.New("numtheory: result overflows")

	// ErrZeroModulus indicates a modulus that is zero (or, for ModInverse, not positive).
	ErrZeroModulus = errors.New("numtheory: modulus must be positive")

	// ErrNotInvertible indicates that a and m share a factor, so a has no inverse mod m.
	ErrNotInvertible = errors.New("numtheory: value not invertible modulo m")
)

const (
	// maxFactorial is the largest n with n! ≤ MaxUint64.
	maxFactorial = 20
	maxUint32    = 1<<32 - 1
)

// abs64 returns |v| as uint64; |MinInt64| is representable there.
func abs64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}

	return uint64(v)
}
