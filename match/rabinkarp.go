package match

// RabinKarp returns every start offset of pattern in text using a rolling
// polynomial hash
//
//	h(s[i..i+m)) = (s[i]·B^(m-1) + … + s[i+m-1]) mod M
//
// with B = Options.Base and M = Options.Modulus. A window whose hash equals the
// pattern hash is compared byte by byte before it is reported, so collisions
// cost time, never correctness.
//
// Complexity:
//
//	Time:   O(n + m) average, O(n·m) when every window collides
//	Memory: O(1) beyond the result
func RabinKarp(text, pattern string, opts ...Option) []int {
	cfg := buildOptions(opts)
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}
	base, mod := cfg.Base, cfg.Modulus

	// high = B^(m-1) mod M, the weight of the byte leaving the window
	high := uint64(1)
	for i := 0; i < m-1; i++ {
		high = high * base % mod
	}

	var hp, ht uint64
	for i := 0; i < m; i++ {
		hp = (hp*base + uint64(pattern[i])) % mod
		ht = (ht*base + uint64(text[i])) % mod
	}

	var out []int
	for i := 0; ; i++ {
		if hp == ht && text[i:i+m] == pattern {
			out = append(out, i)
		}
		if i+m >= n {
			break
		}
		// drop text[i], shift, add text[i+m]; +mod keeps the subtraction non-negative
		// and the inner reduction keeps the product below 2^64
		lead := uint64(text[i]) * high % mod
		ht = ((ht+mod-lead)%mod*base + uint64(text[i+m])) % mod
	}

	return out
}
