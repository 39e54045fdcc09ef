package romantic

import (
	"fmt"
	"strings"
)

// Encode converts value to its canonical numeral string.
//
// Algorithm: greedy subtractive decomposition. Walk the denomination
// table (symbols and subtractive pairs, descending) and, while the
// remaining amount covers a denomination, append its glyphs and
// subtract its value. The table's structure guarantees the result is
// canonical: no symbol repeats more than three times and every 4- or
// 9-digit uses its subtractive pair.
//
// Complexity: O(k + L) where k is the alphabet size and L the output
// length.
//
// Errors:
//   - ErrOutOfRange — value < 1 or value > Max(); the wrapped message
//     carries the valid bounds for this alphabet.
func (s *System) Encode(value int64) (string, error) {
	if value < 1 || value > s.max {
		return "", fmt.Errorf("value %d not in [1, %d]: %w", value, s.max, ErrOutOfRange)
	}

	var b strings.Builder
	remaining := value
	for _, d := range s.denoms {
		for remaining >= d.value {
			b.WriteString(d.glyph)
			remaining -= d.value
		}
	}

	return b.String(), nil
}
