package sorting

import "golang.org/x/exp/constraints"

// Counting returns a stably sorted copy of s using counting sort.
//
// Algorithm Outline:
//  1. Scan for min and max; k = max-min+1 counters are needed.
//  2. Reject k > Options.MaxRange with ErrRangeTooLarge (precondition, not a fallback).
//  3. Count occurrences of every offset x-min, turn counts into end positions
//     (prefix sums), then place elements from the back so equal keys keep order.
//
// The range is computed in uint64 modular arithmetic, so int8 … int64 and
// uint8 … uint64 extremes never overflow.
//
// Complexity:
//
//	Time:   O(n + k)
//	Memory: O(n + k)
func Counting[S ~[]E, E constraints.Integer](s S, opts ...Option) (S, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(s) < 2 {
		return clone(s), nil
	}

	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	k := uint64(hi) - uint64(lo) + 1
	if k == 0 || k > cfg.MaxRange { // k == 0: the full 2^64 range wrapped around
		return nil, ErrRangeTooLarge
	}

	counts := make([]int, k)
	for _, v := range s {
		counts[uint64(v)-uint64(lo)]++
	}
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}
	out := make(S, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		off := uint64(s[i]) - uint64(lo)
		counts[off]--
		out[counts[off]] = s[i]
	}

	return out, nil
}
