package dice

import "errors"

// Parse and evaluation failures are ordinary recoverable results. Callers
// match them with errors.Is; wrapped forms carry the offending input.
var (
	// ErrMismatchedParens indicates unbalanced parentheses in the scanned
	// substring.
	ErrMismatchedParens = errors.New("mismatched parentheses")

	// ErrMissingObject indicates an empty operand position.
	ErrMissingObject = errors.New("missing object")

	// ErrMalformedRoll indicates a roll without a 'd' separator, or with a
	// modifier letter appearing before it.
	ErrMalformedRoll = errors.New("malformed roll")

	// ErrMissingConstant indicates an empty die-count or side-count.
	ErrMissingConstant = errors.New("missing constant")

	// ErrInvalidConstant indicates non-digit content, or an unrepresentable
	// value, in a constant position.
	ErrInvalidConstant = errors.New("invalid constant")

	// ErrMissingModifierConstant indicates a modifier letter with nothing
	// after it.
	ErrMissingModifierConstant = errors.New("missing modifier constant")

	// ErrInvalidModifier indicates a character in modifier position that is
	// not one of c, w, b, v.
	ErrInvalidModifier = errors.New("invalid modifier character")

	// ErrDivisionByZero indicates a '/' fold whose right side evaluated
	// to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOp guards exhaustiveness in the arithmetic fold. Reaching it
	// means a tree was built outside Parse.
	ErrUnknownOp = errors.New("unknown operator")
)
