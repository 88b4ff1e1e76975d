package dice

import "fmt"

// Source produces die draws. Next returns a uniformly distributed value in
// [1, sides] and must not fail; implementations that can fail must abort or
// substitute before this boundary.
//
// A Source is consumed sequentially. Evaluations sharing one Source must not
// run concurrently; give each goroutine its own.
type Source interface {
	Next(sides int) int
}

// EvalOptions controls evaluation behavior beyond the tree itself.
type EvalOptions struct {
	// Narrator, when non-nil, receives an Event for every individual draw
	// and per-roll summary.
	Narrator Narrator
}

// DefaultEvalOptions returns options with narration disabled.
func DefaultEvalOptions() EvalOptions {
	return EvalOptions{}
}

// Eval walks a parsed tree, drawing from src for every roll node and folding
// arithmetic for every operator node, and returns the single integer result.
//
// Fold order follows the tree: each node's own operand is the left value and
// its continuation the right, so "1-2-3" evaluates as 1-(2-3). Division
// truncates and fails with ErrDivisionByZero when the right value is zero.
//
// Eval does not terminate for a reroll threshold at or above the die's side
// count, or an explode threshold at or below 1; bounding those is the
// caller's responsibility.
func Eval(e *Expr, src Source, opts EvalOptions) (int, error) {
	ev := &evaluator{src: src, narrate: opts.Narrator}
	return ev.evalExpr(e)
}

type evaluator struct {
	src     Source
	narrate Narrator
}

func (ev *evaluator) emit(e Event) {
	if ev.narrate != nil {
		ev.narrate(e)
	}
}

func (ev *evaluator) evalExpr(e *Expr) (int, error) {
	var (
		left int
		err  error
	)
	if e.Left != nil {
		left, err = ev.evalExpr(e.Left)
	} else {
		left, err = ev.evalObject(e.Obj)
	}
	if err != nil {
		return 0, err
	}

	if e.IsSinglet() {
		return left, nil
	}

	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return 0, err
	}

	switch e.Op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOp, e.Op)
	}
}

func (ev *evaluator) evalObject(o Object) (int, error) {
	switch n := o.(type) {
	case *Constant:
		return n.Value, nil
	case *SubExpr:
		return ev.evalExpr(n.Expr)
	case *Roll:
		return ev.evalRoll(n), nil
	default:
		return 0, fmt.Errorf("unknown object type %T", o)
	}
}
