package exprtree

import (
	"errors"
	"math"
	"strconv"
)

// Eval evaluates the expression to a float64. Missing operands of a
// degenerate node count as zero. If any part of the expression fails, the
// error from the leftmost failing part is returned, and nothing to its right
// is evaluated.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string) (float64, error) {
	return Parse(src).Eval()
}

func (n *node) eval() (float64, error) {
	if n.leaf() {
		return num(n.text)
	}
	var l, r float64
	if n.left != nil {
		var err error
		if l, err = n.left.eval(); err != nil {
			return 0, err
		}
	}
	if n.right != nil {
		var err error
		if r, err = n.right.eval(); err != nil {
			return 0, err
		}
	}
	switch n.text {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, ErrDivideByZero
		}
		return l / r, nil
	case "^":
		return math.Pow(l, r), nil
	default:
		return 0, &InvalidExpressionError{Expr: ftoa(l) + " " + n.text + " " + ftoa(r)}
	}
}

// num parses an operand. Values too large for a float64 become infinities.
func num(s string) (float64, error) {
	switch literal(s) {
	case litInf:
		if s[0] == '-' {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case litNaN:
		return math.NaN(), nil
	case litNum:
		x, err := strconv.ParseFloat(s, 64)
		var ne *strconv.NumError
		if err == nil || errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return x, nil
		}
	}
	return 0, &InvalidExpressionError{Expr: s}
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
