// Package numtheory provides integer arithmetic for number-theoretic work:
// gcd/lcm and Bézout coefficients, primality and factorization, modular and
// exact exponentiation, factorials and binomial coefficients.
//
// Fixed-width results never wrap silently. An operation whose exact value
// does not fit its return type reports ErrOverflow, and the *Big variants
// (FactorialBig, PowBig) compute the exact value with math/big, multiplying
// large operands through bigfft.
//
// Modular multiplication goes through a 128-bit intermediate (math/bits), so
// ModPow is exact for every uint64 modulus.
package numtheory
