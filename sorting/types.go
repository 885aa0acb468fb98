package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the integer sorts and the dispatcher.
var (
	// ErrRangeTooLarge indicates that max-min+1 exceeds Options.MaxRange for Counting.
	ErrRangeTooLarge = errors.New("sorting: value range too large for counting sort")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and SortInts for unsupported names.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// nilComparator is the panic message for a nil Comparator.
const nilComparator = "sorting: nil comparator"

// DefaultMaxRange is the default cap on the counting-sort value range (16M counters).
const DefaultMaxRange = 1 << 24

// Comparator is a three-way ordering: negative if a < b, zero if a == b,
// positive if a > b. It must describe a strict weak ordering.
type Comparator[E any] func(a, b E) int

// Algorithm names one of the sorting routines of this package.
type Algorithm int

const (
	// QuickSort selects QuickFunc.
	QuickSort Algorithm = iota
	// MergeSort selects MergeFunc.
	MergeSort
	// HeapSort selects HeapFunc.
	HeapSort
	// InsertionSort selects InsertionFunc.
	InsertionSort
	// CountingSort selects Counting (integers only).
	CountingSort
	// RadixSort selects Radix (integers only).
	RadixSort
)

var algorithmNames = [...]string{
	QuickSort:     "quick",
	MergeSort:     "merge",
	HeapSort:      "heap",
	InsertionSort: "insertion",
	CountingSort:  "counting",
	RadixSort:     "radix",
}

// String returns the lower-case name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Stable reports whether the algorithm preserves the input order of equal keys.
func (a Algorithm) Stable() bool {
	switch a {
	case MergeSort, InsertionSort, CountingSort, RadixSort:
		return true
	default:
		return false
	}
}

// ParseAlgorithm maps a case-insensitive name ("quick", "merge", …) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Options configures the integer sorts.
//
// Fields:
//   - MaxRange — the largest value range (max-min+1) Counting accepts.
type Options struct {
	MaxRange uint64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with MaxRange = DefaultMaxRange.
func DefaultOptions() Options {
	return Options{MaxRange: DefaultMaxRange}
}

// WithMaxRange caps the number of counters Counting may allocate.
// Panics if k == 0: a zero cap would reject every non-empty input.
func WithMaxRange(k uint64) Option {
	if k == 0 {
		panic("sorting: WithMaxRange(0)")
	}

	return func(o *Options) {
		o.MaxRange = k
	}
}

// clone returns a fresh copy of s, preserving a nil input as nil.
func clone[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)

	return out
}
