// Package match finds pattern occurrences in a text and computes alignment
// metrics between two sequences.
//
// 🚀 Search routines
//
//	KMP        – O(n + m), failure table, never re-reads matched text
//	RabinKarp  – O(n + m) avg, O(n·m) worst; rolling polynomial hash,
//	             every hash hit is verified byte by byte (no false positives)
//	Z          – O(n + m), Z-array over pattern ⧺ separator ⧺ text
//	Naive      – O(n·m) brute-force reference
//
// All return the ascending list of zero-based start offsets of every full
// occurrence (overlaps included). String arguments are treated as byte
// sequences, so offsets are byte offsets exactly as with strings.Index.
// The ...Seq variants accept any comparable element type.
//
// Conventions:
//   - An empty pattern matches nowhere: the result is nil, not every position.
//   - A pattern longer than the text yields nil.
//   - The Z separator is virtual: it compares unequal to every element, so it
//     can never collide with pattern or text content.
//
// ✨ Alignment routines (strings are compared rune by rune)
//
//	LCS / LCSSeq            – one longest common subsequence, O(n·m) time & memory
//	LCSLength               – its length only, O(min) memory in TwoRows mode
//	LongestCommonSubstring  – longest contiguous common run, first one wins
//	EditDistance            – Levenshtein distance, unit costs
//
// LCS tie-break: when the cell above and the cell to the left hold the same
// length, reconstruction moves UP (drops the current rune of a). This choice
// is fixed so results are reproducible across calls and platforms.
//
// ⚙️ Usage:
//
//	match.KMP("ababcababc", "abc")         // [2 7]
//	match.EditDistance("kitten", "sitting") // 3
//	match.LCS("ABCBDAB", "BDCABA")         // "BCBA"
package match
