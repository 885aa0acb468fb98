package dp

import "errors"

// Unreachable is returned by CoinChange when the amount cannot be formed.
const Unreachable = -1

// maxFibonacci is the largest n whose Fibonacci number fits in uint64.
const maxFibonacci = 93

// Sentinel errors returned by the dp package.
var (
	// ErrNegativeInput indicates a negative index, length or price.
	ErrNegativeInput = errors.New("dp: negative input")

	// ErrLengthMismatch indicates weight and value slices of different lengths.
	ErrLengthMismatch = errors.New("dp: weights and values differ in length")

	// ErrNegativeWeight indicates a knapsack item with negative weight.
	ErrNegativeWeight = errors.New("dp: negative item weight")

	// ErrNegativeCapacity indicates a knapsack capacity below zero.
	ErrNegativeCapacity = errors.New("dp: negative capacity")

	// ErrBadDimensions indicates a matrix-chain dimension list that describes no
	// matrix or has a non-positive dimension.
	ErrBadDimensions = errors.New("dp: invalid matrix dimensions")

	// ErrOverflow indicates that the result does not fit the fixed-width return type.
	ErrOverflow = errors.New("dp: result overflows uint64")
)
