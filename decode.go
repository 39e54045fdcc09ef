package romantic

import (
	"fmt"
	"math"
)

// Decode parses a numeral string back to its integer value.
//
// Algorithm: scan left to right. When the current symbol is the valid
// subtrahend of a larger symbol directly after it, consume both and add
// their difference; otherwise consume one symbol and add its value.
// The scan rejects unknown runes, repetition runs longer than three,
// and value increases that do not form a valid subtractive pair. The
// accumulated value is then re-encoded and compared against the input,
// so Decode accepts exactly the canonical strings Encode produces.
//
// Complexity: O(L) over the input length.
//
// Errors:
//   - ErrUnknownSymbol     — a rune outside the alphabet.
//   - ErrMalformedSequence — grammar violation, non-canonical spelling,
//     or empty input.
//   - ErrOverflow          — the accumulated value exceeds int64.
func (s *System) Decode(text string) (int64, error) {
	if text == "" {
		return 0, fmt.Errorf("empty input: %w", ErrMalformedSequence)
	}

	runes := []rune(text)
	total := int64(0)
	repeats := 0

	for i := 0; i < len(runes); i++ {
		cur, ok := s.index[runes[i]]
		if !ok {
			return 0, fmt.Errorf("symbol %q at offset %d: %w", runes[i], i, ErrUnknownSymbol)
		}

		if i > 0 && runes[i] == runes[i-1] {
			repeats++
		} else {
			repeats = 1
		}
		if repeats > maxRepeat {
			return 0, fmt.Errorf("symbol %q repeated more than %d times: %w", runes[i], maxRepeat, ErrMalformedSequence)
		}

		step := s.values[cur]
		if i+1 < len(runes) {
			next, ok := s.index[runes[i+1]]
			if !ok {
				return 0, fmt.Errorf("symbol %q at offset %d: %w", runes[i+1], i+1, ErrUnknownSymbol)
			}
			if s.values[next] > s.values[cur] {
				if subtrahend(next) != cur {
					return 0, fmt.Errorf("%q may not precede %q: %w", runes[i], runes[i+1], ErrMalformedSequence)
				}
				step = s.values[next] - s.values[cur]
				i++
				repeats = 0
			}
		}

		if total > math.MaxInt64-step {
			return 0, fmt.Errorf("at offset %d: %w", i, ErrOverflow)
		}
		total += step
	}

	// Canonical-form check: the accepted language is exactly the
	// encoder's image, which also enforces cross-group ordering the
	// scan alone cannot see (e.g. IXIX).
	canonical, err := s.Encode(total)
	if err != nil || canonical != text {
		return 0, fmt.Errorf("%q is not a canonical numeral: %w", text, ErrMalformedSequence)
	}

	return total, nil
}
