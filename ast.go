// Package dice parses and evaluates dice-roll expressions such as
// "4d6c3+2d8-1". An expression is parsed once into an immutable tree and
// evaluated once against a random source, optionally narrating every
// individual draw.
package dice

import (
	"fmt"
	"strings"
)

// Op identifies the arithmetic operator joining an expression node to its
// continuation.
type Op int

const (
	// OpNone marks a singlet: the chain terminates at this node.
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return ""
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Expr is one link of an operator chain at a single precedence layer.
//
// Additive-layer nodes hold their completed multiplicative sub-chain in Left;
// multiplicative-layer nodes hold their operand in Obj. Exactly one of the
// two is set. Right continues the chain at the same layer and is nil exactly
// when Op is OpNone.
//
// Chains are right-recursive: "a+b+c" parses as a+(b+c). For the
// non-associative operators this is observable — "1-2-3" evaluates as
// 1-(2-3) — and is preserved deliberately; see Eval.
type Expr struct {
	Left  *Expr
	Obj   Object
	Op    Op
	Right *Expr
}

// IsSinglet reports whether the node terminates its chain, in which case its
// value is its operand's value directly.
func (e *Expr) IsSinglet() bool {
	return e.Right == nil && e.Op == OpNone
}

func (e *Expr) String() string {
	var sb strings.Builder
	if e.Left != nil {
		sb.WriteString(e.Left.String())
	} else if e.Obj != nil {
		sb.WriteString(e.Obj.String())
	}
	if !e.IsSinglet() {
		sb.WriteString(e.Op.String())
		sb.WriteString(e.Right.String())
	}
	return sb.String()
}

// Object is the operand of an expression node. Exactly three variants exist:
// *Constant, *SubExpr, and *Roll.
type Object interface {
	object() // marker method
	String() string
}

// Constant is a literal integer operand.
type Constant struct {
	Value int
}

func (c *Constant) object() {}
func (c *Constant) String() string {
	return fmt.Sprintf("%d", c.Value)
}

// SubExpr is a parenthesized sub-expression operand.
type SubExpr struct {
	Expr *Expr
}

func (s *SubExpr) object() {}
func (s *SubExpr) String() string {
	return "(" + s.Expr.String() + ")"
}

// Roll is a die specification: roll Count dice of Sides sides each,
// combined under the optional modifier.
type Roll struct {
	Count int
	Sides int
	Mod   *Modifier
}

func (r *Roll) object() {}
func (r *Roll) String() string {
	if r.Mod == nil {
		return fmt.Sprintf("%dd%d", r.Count, r.Sides)
	}
	return fmt.Sprintf("%dd%d%s", r.Count, r.Sides, r.Mod)
}

// ModKind identifies how a modifier alters the combination of a roll's dice.
type ModKind int

const (
	// ChooseHigh ('c') keeps only the N highest dice.
	ChooseHigh ModKind = iota
	// ChooseLow ('w') keeps only the N lowest dice.
	ChooseLow
	// RerollBelow ('b') rerolls each die until it lands above N.
	RerollBelow
	// Explode ('v') adds an extra draw to any die at or above N; extra
	// draws can themselves explode.
	Explode
)

func (k ModKind) letter() byte {
	switch k {
	case ChooseHigh:
		return 'c'
	case ChooseLow:
		return 'w'
	case RerollBelow:
		return 'b'
	case Explode:
		return 'v'
	default:
		return '?'
	}
}

// Modifier is a roll modifier with its integer parameter. N is a keep-count
// for the choose kinds and a threshold for reroll and explode.
type Modifier struct {
	Kind ModKind
	N    int
}

func (m *Modifier) String() string {
	return fmt.Sprintf("%c%d", m.Kind.letter(), m.N)
}
