package romantic

// maxRepeat is the classical cap on consecutive repetitions of a single
// symbol in an encoded string (III is valid, IIII is not).
const maxRepeat = 3

// denomination is one greedy encoding step: a single symbol or a
// subtractive pair, together with its combined value. A System holds
// them in strictly descending value order.
type denomination struct {
	value int64
	glyph string
}

// System is an immutable numeral system over an ordered alphabet of
// distinct symbols. The value of each symbol derives from its position:
// index i is worth 10^(i/2) when i is even and 5·10^((i-1)/2) when i is
// odd (I=1, V=5, X=10, L=50, … for the default alphabet).
//
// Construct with Default or New; a System is never mutated afterwards
// and is safe for concurrent use.
type System struct {
	symbols []rune
	values  []int64        // values[i] is the value of symbols[i]
	index   map[rune]int   // symbol → alphabet position
	denoms  []denomination // symbols plus subtractive pairs, descending
	max     int64          // largest representable value, 0 if empty
}

// Max returns the largest value the alphabet can represent (3999 for the
// default alphabet). It is 0 for an empty alphabet, in which case every
// Encode and Decode call fails.
func (s *System) Max() int64 { return s.max }

// Len returns the number of symbols in the alphabet.
func (s *System) Len() int { return len(s.symbols) }

// Symbols returns a copy of the alphabet in value order.
func (s *System) Symbols() []rune {
	out := make([]rune, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Value returns the derived value of symbol and whether the symbol is
// part of the alphabet.
func (s *System) Value(symbol rune) (int64, bool) {
	i, ok := s.index[symbol]
	if !ok {
		return 0, false
	}
	return s.values[i], true
}
