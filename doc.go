// Package algokit is a toolbox of classic algorithms: sorting, searching,
// sequence matching, dynamic programming and number theory, written as
// plain deterministic functions over Go slices and strings.
//
// 🚀 What is inside?
//
//	sorting/    — quick, merge, heap, insertion, counting and radix sort (copies, never in place)
//	search/     — binary (first/last), linear, jump, interpolation, exponential
//	match/      — naive, KMP, Rabin–Karp, Z; LCS, longest common substring, edit distance
//	dp/         — Fibonacci, 0/1 knapsack, coin change, LIS, matrix chain, rod cutting
//	numtheory/  — gcd/lcm, primes and sieve, modular power, factorials, nCr/nPr
//	cmd/algokit — command-line front end for every family
//
// ✨ Conventions
//
//   - Inputs are never mutated; every sort returns a fresh slice.
//   - Misses are reported with sentinel values (search.NotFound, dp.Unreachable),
//     broken preconditions with per-package sentinel errors.
//   - Fixed-width results never wrap: ErrOverflow, plus *Big variants.
//   - Generic over cmp.Ordered, with *Func variants taking a comparator.
//
// Quick example:
//
//	s := sorting.Merge([]int{5, 3, 1})      // [1 3 5]
//	i := search.Binary(s, 3)                // 1
//	m := match.KMP("ababcababc", "abc")     // [2 7]
//	c := dp.CoinChange([]int{1, 2, 5}, 11)  // 3
//
//	go get github.com/katalvlaran/algokit
package algokit
