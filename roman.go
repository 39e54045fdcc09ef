package romantic

import (
	"fmt"
	"math"
)

// defaultAlphabet is the canonical seven-symbol Roman numeral system.
var defaultAlphabet = []rune{'I', 'V', 'X', 'L', 'C', 'D', 'M'}

// Default returns the canonical Roman numeral System (I V X L C D M,
// values 1 through 1000, maximum 3999).
func Default() *System {
	s, err := New(defaultAlphabet)
	if err != nil {
		// The canonical alphabet is distinct and tiny; New cannot fail.
		panic(err)
	}
	return s
}

// New builds a System from an ordered alphabet of distinct symbols.
// Symbol values derive from position as documented on System; they are
// never supplied by the caller.
//
// An empty alphabet is permitted and yields a System with Max() == 0
// on which every Encode and Decode call fails.
//
// Errors:
//   - ErrDuplicateSymbol  — the same rune appears at two positions.
//   - ErrAlphabetTooLarge — the alphabet's maximum value would overflow
//     int64 (39 or more symbols).
func New(symbols []rune) (*System, error) {
	n := len(symbols)
	index := make(map[rune]int, n)
	values := make([]int64, n)

	magnitude := int64(1)
	for i, r := range symbols {
		if prev, dup := index[r]; dup {
			return nil, fmt.Errorf("symbol %q at positions %d and %d: %w", r, prev, i, ErrDuplicateSymbol)
		}
		index[r] = i

		if i > 0 && i%2 == 0 {
			if magnitude > math.MaxInt64/10 {
				return nil, fmt.Errorf("%d symbols: %w", n, ErrAlphabetTooLarge)
			}
			magnitude *= 10
		}
		if i%2 == 0 {
			values[i] = magnitude
		} else {
			if magnitude > math.MaxInt64/5 {
				return nil, fmt.Errorf("%d symbols: %w", n, ErrAlphabetTooLarge)
			}
			values[i] = 5 * magnitude
		}
	}

	max, err := maxValue(values)
	if err != nil {
		return nil, fmt.Errorf("%d symbols: %w", n, err)
	}

	return &System{
		symbols: append([]rune(nil), symbols...),
		values:  values,
		index:   index,
		denoms:  denominations(symbols, values),
		max:     max,
	}, nil
}

// maxValue computes the largest integer representable by an alphabet
// with the given derived values.
//
// With m = (n-1)/2 the highest power-of-ten tier:
//   - n odd:  the top symbol is a power of ten and may repeat up to
//     three times, every lower decimal digit reaches 9: 4·10^m - 1.
//   - n even: the top symbol is a five-tier glyph, so the top decimal
//     digit reaches 8 (five plus three units): 9·10^((n-2)/2) - 1.
//   - n == 0: nothing is representable.
func maxValue(values []int64) (int64, error) {
	n := len(values)
	if n == 0 {
		return 0, nil
	}
	if n%2 == 1 {
		unit := values[n-1] // 10^m
		if unit > math.MaxInt64/4 {
			return 0, ErrAlphabetTooLarge
		}
		return 4*unit - 1, nil
	}
	unit := values[n-2] // 10^m below the top five-tier symbol
	if unit > math.MaxInt64/9 {
		return 0, ErrAlphabetTooLarge
	}
	return 9*unit - 1, nil
}

// denominations lists every greedy encoding step in strictly descending
// value order: each symbol, preceded where applicable by its subtractive
// pair with the tier above (M, CM, D, CD, C, XC, … for the default
// alphabet).
func denominations(symbols []rune, values []int64) []denomination {
	n := len(symbols)
	denoms := make([]denomination, 0, 2*n)
	for i := n - 1; i >= 0; i-- {
		denoms = append(denoms, denomination{values[i], string(symbols[i])})
		if j := subtrahend(i); j >= 0 {
			denoms = append(denoms, denomination{
				value: values[i] - values[j],
				glyph: string([]rune{symbols[j], symbols[i]}),
			})
		}
	}
	return denoms
}

// subtrahend returns the index of the only symbol allowed to prefix the
// symbol at index i subtractively, or -1 if none exists. Only symbols on
// the power-of-ten tier (even index: I, X, C, …) may subtract, and only
// from the one or two symbols directly above them — generalizing IV, IX,
// XL, XC, CD, CM to any alphabet length.
func subtrahend(i int) int {
	if i >= 1 && (i-1)%2 == 0 {
		return i - 1 // five-tier target: IV, XL, CD
	}
	if i >= 2 {
		return i - 2 // ten-tier target: IX, XC, CM
	}
	return -1
}
