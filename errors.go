package romantic

import "errors"

// Sentinel errors for construction, encoding and decoding. All public
// functions return these (possibly wrapped with additional context via
// fmt.Errorf("...: %w", ErrX)); callers match them with errors.Is.
// No operation panics on user input.
var (
	// ErrDuplicateSymbol indicates the alphabet passed to New contains
	// the same symbol at two different positions.
	ErrDuplicateSymbol = errors.New("romantic: duplicate symbol in alphabet")

	// ErrAlphabetTooLarge indicates the alphabet's maximum representable
	// value would not fit in an int64.
	ErrAlphabetTooLarge = errors.New("romantic: alphabet exceeds int64 range")

	// ErrOutOfRange is returned by Encode when the value is below 1 or
	// above the alphabet's maximum. The wrapped message carries the
	// valid bounds.
	ErrOutOfRange = errors.New("romantic: value outside representable range")

	// ErrUnknownSymbol is returned by Decode when the input contains a
	// rune that is not part of the alphabet.
	ErrUnknownSymbol = errors.New("romantic: unknown symbol")

	// ErrMalformedSequence is returned by Decode when the input violates
	// the numeral grammar: a symbol repeated more than three times in a
	// row, a value increase that is not a valid subtractive pair, a
	// non-canonical spelling, or an empty string.
	ErrMalformedSequence = errors.New("romantic: malformed numeral sequence")

	// ErrOverflow is returned by Decode when accumulating the input
	// would exceed the int64 range.
	ErrOverflow = errors.New("romantic: decoded value overflows int64")
)
