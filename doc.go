// Package romantic converts integers to and from Roman-numeral strings,
// generalized from the classical I/V/X/L/C/D/M glyphs to any ordered
// alphabet of distinct symbols.
//
// 🚀 What is romantic?
//
//	A small, pure, zero-I/O numeral codec:
//	  • Default() — the canonical seven-symbol Roman system (max 3999)
//	  • New(symbols) — your own alphabet; values derive from position
//	  • Encode(n) — greedy subtractive decomposition to a glyph string
//	  • Decode(s) — strict parse back to the integer, canonical form only
//
// ✨ How values are assigned:
//
//	The symbol at index i is worth 10^(i/2) when i is even and
//	5·10^((i-1)/2) when i is odd, reproducing the classical sequence
//	1, 5, 10, 50, 100, 500, 1000, … for any alphabet length:
//
//	  Index  | 0 | 1 | 2  | 3  | 4   | 5   | 6
//	  Value  | 1 | 5 | 10 | 50 | 100 | 500 | 1000
//	  Glyph  | I | V | X  | L  | C   | D   | M
//
// ⚙️ Usage:
//
//	roman := romantic.Default()
//
//	s, _ := roman.Encode(2022) // "MMXXII"
//	n, _ := roman.Decode("IX") // 9
//
//	// The order of symbols determines their value: A=1, B=5.
//	custom, _ := romantic.New([]rune{'A', 'B'})
//	s, _ = custom.Encode(6) // "BA"
//
// Decode accepts exactly the strings Encode produces: each symbol may
// repeat at most three times in a row, values never increase except in a
// valid subtractive pair (IV, IX, XL, XC, CD, CM and their generalized
// equivalents), and every accepted string re-encodes to itself.
//
// A System is immutable after construction and safe for concurrent use
// without synchronization. All operations are bounded, side-effect-free
// computations; malformed input is reported through sentinel errors
// (matched with errors.Is), never through panics.
package romantic
