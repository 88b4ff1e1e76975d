package dice

import (
	"errors"
	"testing"
)

func TestFindFirstFreeOp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opchars string
		want    int
	}{
		{"additive at top level", "1+2", additiveOps, 1},
		{"first of several", "1+2-3", additiveOps, 1},
		{"nested operator skipped", "(1+2)*3", additiveOps, -1},
		{"operator after group", "(1+2)+3", additiveOps, 5},
		{"deeply nested skipped", "((1+2)*(3+4))", additiveOps, -1},
		{"multiplicative layer", "2*3/4", multiplicativeOps, 1},
		{"additive chars invisible to mult layer", "1+2", multiplicativeOps, -1},
		{"no operator", "2d6", additiveOps, -1},
		{"empty", "", additiveOps, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findFirstFreeOp(tt.input, tt.opchars)
			if err != nil {
				t.Fatalf("findFirstFreeOp(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("findFirstFreeOp(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindFirstFreeOp_MismatchedParens(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed open", "(1+2"},
		{"leading close", ")1+2"},
		{"close without open", "2)"},
		{"deep unclosed", "((1+2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := findFirstFreeOp(tt.input, additiveOps)
			if !errors.Is(err, ErrMismatchedParens) {
				t.Fatalf("findFirstFreeOp(%q) error = %v, want ErrMismatchedParens", tt.input, err)
			}
		})
	}
}

// "No operator" and "malformed parens" are distinct results: a scan that
// finds nothing reports -1 with a nil error, never an error value.
func TestFindFirstFreeOp_NoneIsNotAnError(t *testing.T) {
	got, err := findFirstFreeOp("(1+2)", additiveOps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}
