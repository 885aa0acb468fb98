package match

// MemoryMode controls how the alignment DP tables are stored.
//
//   - FullMatrix — keep the whole (n+1)x(m+1) table. O(n·m) memory.
//   - TwoRows    — keep only the previous and current row. O(m) memory.
//
// Both produce identical distances; LCS reconstruction always needs the full table.
type MemoryMode int

const (
	// TwoRows keeps two rolling rows.
	TwoRows MemoryMode = iota

	// FullMatrix stores the entire DP table.
	FullMatrix
)

// Default Rabin–Karp parameters.
const (
	DefaultBase    = 256
	DefaultModulus = 1_000_000_007
)

// MaxHashParam is the exclusive upper bound on the Rabin–Karp base and
// modulus; below it h*base never overflows uint64.
const MaxHashParam = 1 << 32

// ValidHashParam reports whether v is an acceptable Rabin–Karp base or
// modulus, i.e. 2 ≤ v < MaxHashParam.
func ValidHashParam(v uint64) bool {
	return v >= 2 && v < MaxHashParam
}

// Options configures the search and alignment routines.
//
// Fields:
//   - Base       — Rabin–Karp polynomial base, 2 ≤ Base < 2^32.
//   - Modulus    — Rabin–Karp modulus, 2 ≤ Modulus < 2^32.
//   - MemoryMode — DP storage for LCSLength and EditDistance.
type Options struct {
	Base       uint64
	Modulus    uint64
	MemoryMode MemoryMode
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Base=256, Modulus=1e9+7, MemoryMode=TwoRows.
func DefaultOptions() Options {
	return Options{
		Base:       DefaultBase,
		Modulus:    DefaultModulus,
		MemoryMode: TwoRows,
	}
}

// WithBase sets the Rabin–Karp base. Panics outside [2, 2^32).
func WithBase(b uint64) Option {
	if !ValidHashParam(b) {
		panic("match: WithBase out of range")
	}

	return func(o *Options) {
		o.Base = b
	}
}

// WithModulus sets the Rabin–Karp modulus. Panics outside [2, 2^32).
// Small moduli are legal and useful in tests to force hash collisions.
func WithModulus(m uint64) Option {
	if !ValidHashParam(m) {
		panic("match: WithModulus out of range")
	}

	return func(o *Options) {
		o.Modulus = m
	}
}

// WithMemoryMode selects the DP storage of the alignment routines.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
