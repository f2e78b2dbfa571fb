package exprtree_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/exprtree"
)

// TestLiterals checks that float64 and arbitrary-precision evaluation accept
// the same operands.
func TestLiterals(t *testing.T) {
	cases := []struct {
		src string
		// ok is whether the operand is a number. NaN is a number to float64
		// evaluation but outside the domain of a Context.
		ok bool
		r  float64
	}{
		{"0", true, 0},
		{"42", true, 42},
		{"-7", true, -7},
		{"+7", true, 7},
		{"1.", true, 1},
		{".5", true, 0.5},
		{"-.5", true, -0.5},
		{"1.25e2", true, 125},
		{"1E-2", true, 0.01},
		{"1e+2", true, 100},
		{"inf", true, math.Inf(1)},
		{"Infinity", true, math.Inf(1)},
		{"-INF", true, math.Inf(-1)},
		{"nan", true, math.NaN()},
		{"NaN", true, math.NaN()},
		{"", false, 0},
		{".", false, 0},
		{"-", false, 0},
		{"e5", false, 0},
		{"1e", false, 0},
		{"1e+", false, 0},
		{"1p4", false, 0},
		{"0x1p4", false, 0},
		{"0x10", false, 0},
		{"1_000", false, 0},
		{"1.2.3", false, 0},
		{"+-1", false, 0},
		{"infinit", false, 0},
		{"12a", false, 0},
	}
	ctx := exprtree.NewContext()
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			e := exprtree.Parse(c.src)
			f, ferr := e.Eval()
			b := ctx.Eval(e)
			berr := ctx.Err()
			if !c.ok {
				var ie *exprtree.InvalidExpressionError
				if !errors.As(ferr, &ie) {
					t.Errorf("float64 evaluation of %q: want InvalidExpressionError, got %v (%g)", c.src, ferr, f)
				}
				if !errors.As(berr, &ie) {
					t.Errorf("precise evaluation of %q: want InvalidExpressionError, got %v (%g)", c.src, berr, b)
				}
				return
			}
			if ferr != nil {
				t.Fatalf("float64 evaluation of %q: %v", c.src, ferr)
			}
			if math.IsNaN(c.r) {
				if !math.IsNaN(f) {
					t.Errorf("float64 evaluation of %q: want NaN, got %g", c.src, f)
				}
				var de exprtree.DomainError
				if !errors.As(berr, &de) {
					t.Errorf("precise evaluation of %q: want DomainError, got %v", c.src, berr)
				}
				return
			}
			if f != c.r {
				t.Errorf("float64 evaluation of %q: want %g, got %g", c.src, c.r, f)
			}
			if berr != nil {
				t.Fatalf("precise evaluation of %q: %v", c.src, berr)
			}
			if g, _ := b.Float64(); g != c.r {
				t.Errorf("precise evaluation of %q: want %g, got %g", c.src, c.r, b)
			}
		})
	}
}
