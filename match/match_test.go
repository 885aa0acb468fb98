package match_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/match"
)

const seedDet = int64(11)

// searchers lists every fast search routine under one signature.
var searchers = map[string]func(text, pattern string) []int{
	"kmp":        match.KMP,
	"z":          match.Z,
	"rabin-karp": func(t, p string) []int { return match.RabinKarp(t, p) },
	// a tiny modulus makes almost every window collide; verification must
	// still reject the false candidates
	"rabin-karp/collide": func(t, p string) []int {
		return match.RabinKarp(t, p, match.WithModulus(3))
	},
	"rabin-karp/wide": func(t, p string) []int {
		return match.RabinKarp(t, p, match.WithBase(1<<32-1), match.WithModulus(1<<32-5))
	},
}

// randomString draws n bytes from a small alphabet so that matches are frequent.
func randomString(r *rand.Rand, n int, alphabet string) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}

	return sb.String()
}

// TestSearch_Scenario covers the canonical example.
func TestSearch_Scenario(t *testing.T) {
	for name, fn := range searchers {
		assert.Equal(t, []int{2, 7}, fn("ababcababc", "abc"), name)
	}
	assert.Equal(t, []int{2, 7}, match.Naive("ababcababc", "abc"))
}

// TestSearch_Degenerate pins the empty-pattern convention and the length edge cases.
func TestSearch_Degenerate(t *testing.T) {
	for name, fn := range searchers {
		assert.Nil(t, fn("abc", ""), "%s: empty pattern matches nowhere", name)
		assert.Nil(t, fn("", ""), name)
		assert.Nil(t, fn("", "a"), name)
		assert.Nil(t, fn("ab", "abc"), "%s: pattern longer than text", name)
		assert.Equal(t, []int{0}, fn("abc", "abc"), "%s: pattern equals text", name)
		assert.Nil(t, fn("abc", "abd"), name)
	}
}

// TestSearch_Overlapping verifies that overlapping occurrences are all reported.
func TestSearch_Overlapping(t *testing.T) {
	for name, fn := range searchers {
		assert.Equal(t, []int{0, 1, 2, 3}, fn("aaaaaa", "aaa"), name)
		assert.Equal(t, []int{0, 2, 4}, fn("abababa", "aba"), name)
	}
}

// TestSearch_MatchesBruteForce is the completeness property: every routine
// returns exactly the brute-force position set on random inputs.
func TestSearch_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	for round := 0; round < 300; round++ {
		text := randomString(r, r.Intn(60), "ab")
		pattern := randomString(r, r.Intn(6), "ab")
		want := match.Naive(text, pattern)
		for name, fn := range searchers {
			assert.Equal(t, want, fn(text, pattern), "%s: text=%q pattern=%q", name, text, pattern)
		}
	}
}

// TestSearch_SeparatorCannotCollide feeds text that contains every byte value,
// including those a physical Z separator would typically use.
func TestSearch_SeparatorCannotCollide(t *testing.T) {
	text := "$#\x00a$#\x00"
	assert.Equal(t, []int{0, 4}, match.Z(text, "$#\x00"))
	assert.Equal(t, []int{0, 4}, match.KMP(text, "$#\x00"))
}

// TestSearch_Seq runs the generic variants over non-byte elements.
func TestSearch_Seq(t *testing.T) {
	text := []int{1, 2, 3, 1, 2, 3, 1}
	pattern := []int{3, 1}
	assert.Equal(t, []int{2, 5}, match.KMPSeq(text, pattern))
	assert.Equal(t, []int{2, 5}, match.ZSeq(text, pattern))
	assert.Equal(t, []int{2, 5}, match.NaiveSeq(text, pattern))
}

// TestFailureTable checks the prefix-function on a classic pattern.
func TestFailureTable(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 2, 0, 1, 2, 3, 4}, match.FailureTable([]byte("ababcabab")))
	assert.Empty(t, match.FailureTable([]byte{}))
}

// TestZArray checks the Z-array convention z[0] = len(s).
func TestZArray(t *testing.T) {
	assert.Equal(t, []int{7, 0, 1, 0, 3, 0, 1}, match.ZArray([]byte("abacaba")))
	assert.Empty(t, match.ZArray([]byte{}))
}

// TestWithOptions_Panics verifies that option constructors reject nonsense.
func TestWithOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { match.WithBase(1) })
	assert.Panics(t, func() { match.WithBase(1 << 32) })
	assert.Panics(t, func() { match.WithModulus(0) })
	assert.Panics(t, func() { match.WithModulus(1 << 40) })
	assert.Panics(t, func() { match.WithModulus(match.MaxHashParam) })
	assert.NotPanics(t, func() { match.WithBase(match.MaxHashParam - 1) })
}

// TestValidHashParam pins the accepted range shared by WithBase and WithModulus.
func TestValidHashParam(t *testing.T) {
	assert.False(t, match.ValidHashParam(0))
	assert.False(t, match.ValidHashParam(1))
	assert.True(t, match.ValidHashParam(2))
	assert.True(t, match.ValidHashParam(match.MaxHashParam-1))
	assert.False(t, match.ValidHashParam(match.MaxHashParam))
	assert.True(t, match.ValidHashParam(match.DefaultBase))
	assert.True(t, match.ValidHashParam(match.DefaultModulus))
}

// TestLCS pins reconstructed subsequences, including the up-on-ties rule.
func TestLCS(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"ABCBDAB", "BDCABA", "BCBA"},
		{"AGGTAB", "GXTXAYB", "GTAB"},
		{"abcde", "ace", "ace"},
		{"ab", "ba", "a"}, // tie: moving up drops b[0]='b' from consideration
		{"xyz", "abc", ""},
		{"", "abc", ""},
		{"héllo", "hallo", "hllo"},
	}
	for _, tc := range cases {
		got := match.LCS(tc.a, tc.b)
		assert.Equal(t, tc.want, got, "LCS(%q, %q)", tc.a, tc.b)
		assert.Equal(t, len([]rune(tc.want)), match.LCSLength(tc.a, tc.b))
		assert.Equal(t, len([]rune(tc.want)), match.LCSLength(tc.a, tc.b, match.WithMemoryMode(match.FullMatrix)))
	}
}

// TestLCS_IsCommonSubsequence checks the reconstruction on random input.
func TestLCS_IsCommonSubsequence(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	for round := 0; round < 200; round++ {
		a := randomString(r, r.Intn(25), "abc")
		b := randomString(r, r.Intn(25), "abc")
		got := match.LCS(a, b)
		assert.True(t, isSubsequence(got, a), "%q ⊄ %q", got, a)
		assert.True(t, isSubsequence(got, b), "%q ⊄ %q", got, b)
		assert.Equal(t, len(got), match.LCSLength(a, b))
		assert.Equal(t, len(got), match.LCSLength(b, a), "length is symmetric")
	}
}

func isSubsequence(sub, s string) bool {
	i := 0
	for j := 0; j < len(s) && i < len(sub); j++ {
		if s[j] == sub[i] {
			i++
		}
	}

	return i == len(sub)
}

// TestLongestCommonSubstring covers ties, runes and disjoint inputs.
func TestLongestCommonSubstring(t *testing.T) {
	assert.Equal(t, "abcd", match.LongestCommonSubstring("abcdxyz", "xyzabcd"))
	assert.Equal(t, "Geeks", match.LongestCommonSubstring("GeeksforGeeks", "GeeksQuiz"))
	assert.Equal(t, "ab", match.LongestCommonSubstring("abxcd", "cdxab"), "first run in a wins on ties")
	assert.Equal(t, "zz", match.LongestCommonSubstring("zzz", "zz"))
	assert.Equal(t, "", match.LongestCommonSubstring("abc", "xyz"))
	assert.Equal(t, "", match.LongestCommonSubstring("", "xyz"))
	assert.Equal(t, "ünche", match.LongestCommonSubstring("München", "Tünche"))
}

// TestEditDistance covers the scenario, the base cases and rune handling.
func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
		{"intention", "execution", 5},
		{"café", "cafe", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, match.EditDistance(tc.a, tc.b), "%q→%q", tc.a, tc.b)
		assert.Equal(t, tc.want, match.EditDistance(tc.a, tc.b, match.WithMemoryMode(match.FullMatrix)))
	}
}

// TestEditDistance_Metric checks identity, symmetry and the triangle inequality
// on random strings, in both memory modes.
func TestEditDistance_Metric(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	full := match.WithMemoryMode(match.FullMatrix)
	for round := 0; round < 150; round++ {
		a := randomString(r, r.Intn(15), "abcd")
		b := randomString(r, r.Intn(15), "abcd")
		c := randomString(r, r.Intn(15), "abcd")

		ab := match.EditDistance(a, b)
		assert.Equal(t, 0, match.EditDistance(a, a))
		assert.Equal(t, ab, match.EditDistance(b, a))
		assert.Equal(t, ab, match.EditDistance(a, b, full))
		assert.LessOrEqual(t, match.EditDistance(a, c), ab+match.EditDistance(b, c))
	}
}
