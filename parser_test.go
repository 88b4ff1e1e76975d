package dice

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func mustParse(t *testing.T, input string) *Expr {
	t.Helper()
	tree, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", input, err)
	}
	return tree
}

// operand unwraps an additive node down to its multiplicative operand.
func operand(t *testing.T, e *Expr) Object {
	t.Helper()
	if e.Left == nil {
		t.Fatalf("expected additive node with a multiplicative sub-chain")
	}
	return e.Left.Obj
}

// ---------------------------------------------------------------------------
// Structure
// ---------------------------------------------------------------------------

func TestParse_Constant(t *testing.T) {
	tree := mustParse(t, "42")

	if !tree.IsSinglet() {
		t.Fatalf("expected singlet, got op %v", tree.Op)
	}
	c, ok := operand(t, tree).(*Constant)
	if !ok {
		t.Fatalf("expected *Constant operand, got %T", operand(t, tree))
	}
	if c.Value != 42 {
		t.Fatalf("constant = %d, want 42", c.Value)
	}
}

func TestParse_Roll(t *testing.T) {
	tests := []struct {
		input string
		count int
		sides int
		mod   *Modifier
	}{
		{"2d6", 2, 6, nil},
		{"4d6c3", 4, 6, &Modifier{Kind: ChooseHigh, N: 3}},
		{"4d6w2", 4, 6, &Modifier{Kind: ChooseLow, N: 2}},
		{"3d8b2", 3, 8, &Modifier{Kind: RerollBelow, N: 2}},
		{"1d10v9", 1, 10, &Modifier{Kind: Explode, N: 9}},
		{"10d100c10", 10, 100, &Modifier{Kind: ChooseHigh, N: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := mustParse(t, tt.input)
			r, ok := operand(t, tree).(*Roll)
			if !ok {
				t.Fatalf("expected *Roll operand, got %T", operand(t, tree))
			}
			if r.Count != tt.count || r.Sides != tt.sides {
				t.Fatalf("roll = %dd%d, want %dd%d", r.Count, r.Sides, tt.count, tt.sides)
			}
			switch {
			case tt.mod == nil:
				if r.Mod != nil {
					t.Fatalf("unexpected modifier %v", r.Mod)
				}
			case r.Mod == nil:
				t.Fatalf("missing modifier, want %v", tt.mod)
			case r.Mod.Kind != tt.mod.Kind || r.Mod.N != tt.mod.N:
				t.Fatalf("modifier = %v, want %v", r.Mod, tt.mod)
			}
		})
	}
}

func TestParse_PrecedenceShape(t *testing.T) {
	// "2+3*4": the additive layer splits at '+', and the multiplicative
	// chain 3*4 lives entirely inside the right continuation.
	tree := mustParse(t, "2+3*4")

	if tree.Op != OpAdd {
		t.Fatalf("root op = %v, want +", tree.Op)
	}
	if c, ok := operand(t, tree).(*Constant); !ok || c.Value != 2 {
		t.Fatalf("left operand = %v, want constant 2", operand(t, tree))
	}

	right := tree.Right
	if !right.IsSinglet() {
		t.Fatalf("right continuation should terminate the additive chain")
	}
	mult := right.Left
	if mult.Op != OpMul {
		t.Fatalf("multiplicative op = %v, want *", mult.Op)
	}
}

func TestParse_RightRecursiveChain(t *testing.T) {
	// "1-2-3" parses as 1-(2-3): the continuation carries its own
	// subtraction.
	tree := mustParse(t, "1-2-3")

	if tree.Op != OpSub {
		t.Fatalf("root op = %v, want -", tree.Op)
	}
	if tree.Right.Op != OpSub {
		t.Fatalf("continuation op = %v, want -", tree.Right.Op)
	}
	if !tree.Right.Right.IsSinglet() {
		t.Fatalf("chain should terminate after the third term")
	}
}

func TestParse_ParenthesizedSubExpr(t *testing.T) {
	tree := mustParse(t, "(2+3)*4")

	mult := tree.Left
	if mult.Op != OpMul {
		t.Fatalf("op = %v, want *", mult.Op)
	}
	sub, ok := mult.Obj.(*SubExpr)
	if !ok {
		t.Fatalf("expected *SubExpr operand, got %T", mult.Obj)
	}
	if sub.Expr.Op != OpAdd {
		t.Fatalf("inner op = %v, want +", sub.Expr.Op)
	}
}

func TestParse_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"42",
		"2d6",
		"4d6c3+2d8-1",
		"(2+3)*4",
		"1d6-1d6-1d6",
		"(1d4+4)*2/3",
		"3d8b2",
		"2d10v9",
	}

	for _, input := range inputs {
		if got := mustParse(t, input).String(); got != input {
			t.Fatalf("Parse(%q).String() = %q", input, got)
		}
	}
}

// A modifier parameter is consumed with leading-digit-run semantics: a run of
// non-digits after the letter yields zero, not an error.
func TestParse_ModifierConstantLeadingDigits(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"4d6cx", 0},
		{"4d6c3x", 3},
		{"4d6c12", 12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := mustParse(t, tt.input)
			r := operand(t, tree).(*Roll)
			if r.Mod == nil || r.Mod.N != tt.want {
				t.Fatalf("modifier = %v, want N=%d", r.Mod, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Failures
// ---------------------------------------------------------------------------

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrMissingObject},
		{"unclosed paren", "(1+2", ErrMismatchedParens},
		{"extra close paren", "(1+2))", ErrMismatchedParens},
		{"empty group", "()", ErrMissingObject},
		{"missing right operand", "1+", ErrMissingObject},
		{"missing left operand", "+1", ErrMissingObject},
		{"missing die count", "d6", ErrMissingConstant},
		{"missing side count", "2d", ErrMissingConstant},
		{"invalid side count", "2dz", ErrInvalidConstant},
		{"no separator", "xyz", ErrMalformedRoll},
		{"modifier before separator", "2c3d6", ErrMalformedRoll},
		{"missing modifier constant", "4d6c", ErrMissingModifierConstant},
		{"count overflow", "99999999999999999999d6", ErrInvalidConstant},
		{"constant overflow", "99999999999999999999", ErrInvalidConstant},
		{"nested failure propagates", "(2+(3*))", ErrMissingObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if tree != nil {
				t.Fatalf("Parse(%q) returned a partial tree alongside an error", tt.input)
			}
		})
	}
}
