// Package dp solves classic optimal-substructure problems with bottom-up
// tabulation. Every function is deterministic, allocates its own tables and
// keeps no state between calls.
//
//	Fibonacci, FibonacciBig   – O(n)
//	Knapsack, KnapsackItems   – 0/1 knapsack, O(n·W)
//	CoinChange                – minimum coins, O(k·amount), Unreachable (-1) if impossible
//	CoinChangeWays            – number of coin combinations, O(k·amount)
//	LIS, LISSequence          – strictly increasing subsequence, O(n log n)
//	MatrixChain(Order)        – minimum scalar multiplications, O(n³)
//	RodCutting                – maximum revenue, O(n²)
//
// Input that breaks a problem's contract (mismatched weight/value lengths,
// negative capacity, non-positive matrix dimensions) is reported through the
// sentinel errors below; an unreachable coin-change target is a result, not
// an error, and is reported as Unreachable.
package dp
