package numtheory

import "modernc.org/mathutil"

// IsPrime reports whether n is prime by trial division over 2, 3 and the
// candidates 6k±1 up to ⌊√n⌋. Values below 2 are not prime.
//
// Complexity: O(√n).
func IsPrime(n int64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	limit := int64(mathutil.SqrtUint64(uint64(n)))
	for i := int64(5); i <= limit; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Sieve returns all primes ≤ n in ascending order using the sieve of
// Eratosthenes, or nil when n < 2. Crossing out starts at p² for each prime p.
//
// Complexity: O(n log log n) time, O(n) memory.
func Sieve(n int) []int {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	for p := 2; p*p <= n; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= n; m += p {
			composite[m] = true
		}
	}

	primes := make([]int, 0, n/2)
	for p := 2; p <= n; p++ {
		if !composite[p] {
			primes = append(primes, p)
		}
	}

	return primes
}

// PrimeFactors returns the prime factorization of n in ascending order with
// multiplicity (12 → [2 2 3]), or nil for n < 2.
func PrimeFactors(n int64) []int64 {
	if n < 2 {
		return nil
	}
	if n <= maxUint32 {
		var out []int64
		for _, term := range mathutil.FactorInt(uint32(n)) {
			for k := uint32(0); k < term.Power; k++ {
				out = append(out, int64(term.Prime))
			}
		}
		return out
	}

	var out []int64
	for _, p := range []int64{2, 3} {
		for n%p == 0 {
			out = append(out, p)
			n /= p
		}
	}
	for i := int64(5); i <= n/i; i += 6 {
		for _, p := range []int64{i, i + 2} {
			for n%p == 0 {
				out = append(out, p)
				n /= p
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}

	return out
}
