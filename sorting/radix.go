package sorting

import "golang.org/x/exp/constraints"

// Radix returns a sorted copy of s using LSD radix sort over decimal digits.
//
// Negative numbers: digits are taken from the magnitude |x|, which alone would
// interleave -5 and 5. Radix therefore partitions the input, sorts the negatives
// by DESCENDING magnitude and the non-negatives by ascending magnitude, and
// concatenates the two. The result is fully ordered for every signed type,
// including its minimum value, and stays stable.
//
// Complexity:
//
//	Time:   O(d·n), d = number of decimal digits of max |x| (at most 20)
//	Memory: O(n)
func Radix[S ~[]E, E constraints.Integer](s S) S {
	out := clone(s)
	if len(out) < 2 {
		return out
	}

	neg := make(S, 0)
	pos := make(S, 0, len(out))
	for _, v := range out {
		if v < 0 {
			neg = append(neg, v)
		} else {
			pos = append(pos, v)
		}
	}
	radixByMagnitude(neg, true)
	radixByMagnitude(pos, false)

	copy(out, neg)
	copy(out[len(neg):], pos)

	return out
}

// magnitude returns |v| as uint64; correct for the minimum of every signed type.
func magnitude[E constraints.Integer](v E) uint64 {
	if v < 0 {
		return -uint64(v)
	}

	return uint64(v)
}

// radixByMagnitude stably sorts s in place by |x|, ascending or descending.
// Each pass is a counting sort over one decimal digit.
func radixByMagnitude[E constraints.Integer](s []E, descending bool) {
	if len(s) < 2 {
		return
	}
	var maxMag uint64
	for _, v := range s {
		if m := magnitude(v); m > maxMag {
			maxMag = m
		}
	}
	digits := 1
	for m := maxMag / 10; m > 0; m /= 10 {
		digits++
	}

	buf := make([]E, len(s))
	src, dst := s, buf
	exp := uint64(1)
	for d := 0; d < digits; d++ {
		var counts [10]int
		for _, v := range src {
			counts[digitAt(v, exp, descending)]++
		}
		for i := 1; i < 10; i++ {
			counts[i] += counts[i-1]
		}
		for i := len(src) - 1; i >= 0; i-- {
			b := digitAt(src[i], exp, descending)
			counts[b]--
			dst[counts[b]] = src[i]
		}
		src, dst = dst, src
		if d+1 < digits {
			exp *= 10
		}
	}
	if digits%2 == 1 { // odd number of passes: result sits in buf
		copy(s, buf)
	}
}

// digitAt returns the bucket of v for the decimal place exp; descending order
// maps digit 9 to bucket 0.
func digitAt[E constraints.Integer](v E, exp uint64, descending bool) int {
	d := int(magnitude(v) / exp % 10)
	if descending {
		return 9 - d
	}

	return d
}
