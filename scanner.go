package dice

import "strings"

// Operator sets per precedence layer. Parentheses ride along in both sets so
// the scanner can track nesting depth.
const (
	additiveOps       = "()+-"
	multiplicativeOps = "()*/"
)

// findFirstFreeOp returns the index of the first operator character in s that
// is not nested inside parentheses, considering only characters in opchars.
// It returns -1 with a nil error when s contains no such operator, which is
// distinct from the ErrMismatchedParens failure: depth going negative at any
// point, or remaining open once the scan is exhausted.
//
// A zero-depth operator returns immediately, so parentheses to its right are
// not validated here; the recursive parse of the suffix scans them later.
func findFirstFreeOp(s string, opchars string) (int, error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(opchars, c) < 0 {
			continue
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return -1, ErrMismatchedParens
			}
		default:
			if depth == 0 {
				return i, nil
			}
		}
	}
	if depth != 0 {
		return -1, ErrMismatchedParens
	}
	return -1, nil
}
