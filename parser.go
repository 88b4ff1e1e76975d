package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a dice expression into its tree form. The returned tree is
// immutable and safe to evaluate any number of times. On failure no partial
// tree is returned.
//
// Precedence is encoded structurally rather than by precedence climbing: each
// layer locates its own first unnested operator, parses everything left of it
// as the lower layer, and recurses on the suffix at the same layer. Chains
// are therefore right-recursive; see Expr.
func Parse(input string) (*Expr, error) {
	return parseExpr(input, layerAdditive)
}

type layer int

const (
	layerAdditive layer = iota
	layerMultiplicative
)

func (l layer) opchars() string {
	if l == layerMultiplicative {
		return multiplicativeOps
	}
	return additiveOps
}

func parseExpr(s string, l layer) (*Expr, error) {
	if len(s) == 0 {
		return nil, ErrMissingObject
	}

	idx, err := findFirstFreeOp(s, l.opchars())
	if err != nil {
		return nil, err
	}

	// No operator at this layer: the whole substring is a single
	// lower-layer unit with no continuation.
	if idx < 0 {
		if l == layerMultiplicative {
			obj, err := parseObject(s)
			if err != nil {
				return nil, err
			}
			return &Expr{Obj: obj}, nil
		}
		left, err := parseExpr(s, layerMultiplicative)
		if err != nil {
			return nil, err
		}
		return &Expr{Left: left}, nil
	}

	var (
		obj  Object
		left *Expr
	)
	if l == layerMultiplicative {
		obj, err = parseObject(s[:idx])
	} else {
		left, err = parseExpr(s[:idx], layerMultiplicative)
	}
	if err != nil {
		return nil, err
	}

	op := parseOp(s[idx])
	if op == OpNone {
		// Unreachable: the scanner only matches this layer's operators.
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, s[idx])
	}

	right, err := parseExpr(s[idx+1:], l)
	if err != nil {
		return nil, err
	}

	return &Expr{Left: left, Obj: obj, Op: op, Right: right}, nil
}

func parseOp(c byte) Op {
	switch c {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	default:
		return OpNone
	}
}

// parseObject disambiguates the three operand forms: a leading '(' means a
// parenthesized sub-expression whose matching close must be the final byte,
// an all-digit substring is an integer constant, and anything else is
// attempted as a roll.
func parseObject(s string) (Object, error) {
	if len(s) == 0 {
		return nil, ErrMissingObject
	}

	switch {
	case s[0] == '(':
		if s[len(s)-1] != ')' {
			return nil, ErrMismatchedParens
		}
		sub, err := parseExpr(s[1:len(s)-1], layerAdditive)
		if err != nil {
			return nil, err
		}
		return &SubExpr{Expr: sub}, nil

	case allDigits(s):
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidConstant, s)
		}
		return &Constant{Value: v}, nil

	default:
		return parseRoll(s)
	}
}

// parseRoll parses XdY with an optional trailing modifier. The first 'd' is
// the separator; the first of "cbvw" starts the modifier, and everything
// after the modifier letter is its parameter.
func parseRoll(s string) (*Roll, error) {
	d := strings.IndexByte(s, 'd')
	if d < 0 {
		return nil, fmt.Errorf("%w: no 'd' separator in %q", ErrMalformedRoll, s)
	}

	var mod *Modifier
	end := len(s)
	if m := strings.IndexAny(s, "cbvw"); m >= 0 {
		if m < d {
			return nil, fmt.Errorf("%w: modifier before 'd' in %q", ErrMalformedRoll, s)
		}
		var err error
		mod, err = parseModifier(s[m:])
		if err != nil {
			return nil, err
		}
		end = m
	}

	count, err := parseConstant(s[:d])
	if err != nil {
		return nil, err
	}
	sides, err := parseConstant(s[d+1 : end])
	if err != nil {
		return nil, err
	}

	return &Roll{Count: count, Sides: sides, Mod: mod}, nil
}

// parseConstant parses a die-count or side-count: a non-empty, pure decimal
// digit run with no sign.
func parseConstant(s string) (int, error) {
	if len(s) == 0 {
		return 0, ErrMissingConstant
	}
	if !allDigits(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidConstant, s)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Digit runs only fail Atoi on overflow.
		return 0, fmt.Errorf("%w: %q", ErrInvalidConstant, s)
	}
	return v, nil
}

func parseModifier(s string) (*Modifier, error) {
	var kind ModKind
	switch s[0] {
	case 'c':
		kind = ChooseHigh
	case 'w':
		kind = ChooseLow
	case 'b':
		kind = RerollBelow
	case 'v':
		kind = Explode
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidModifier, s[0])
	}
	if len(s) < 2 {
		return nil, ErrMissingModifierConstant
	}
	return &Modifier{Kind: kind, N: leadingInt(s[1:])}, nil
}

// leadingInt reads the leading digit run of s, yielding 0 when s starts with
// a non-digit. Trailing non-digit characters after a modifier letter have
// always been consumed this way; "4d6cx" is a keep-zero roll, not an error.
func leadingInt(s string) int {
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
