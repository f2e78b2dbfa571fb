package exprtree

import (
	"errors"
	"math/big"
	"strconv"
)

// ErrDivideByZero is returned when the right side of a division evaluates to
// exactly zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// InvalidExpressionError is an error indicating an operand that is not a
// number, or a node with operands whose text is not an operator.
type InvalidExpressionError struct {
	// Expr is the offending text. For a node that is not an operator, it is
	// the evaluated left operand, the node's text, and the evaluated right
	// operand, separated by spaces.
	Expr string
}

func (err *InvalidExpressionError) Error() string {
	return "invalid expression: " + strconv.Quote(err.Expr)
}

// DomainError is an error returned when an arbitrary-precision operation has
// no representable result, such as a negative number raised to a power or
// infinity minus infinity.
type DomainError struct {
	// X is the out-of-domain argument. It is nil for an operand that is not a
	// number, i.e. NaN.
	X *big.Float
	// Arg is the 1-based index of the argument, or 0 if both are at fault.
	Arg int
	// Func is the operator.
	Func string
}

func (err DomainError) Error() string {
	r := "NaN"
	if err.X != nil {
		r = err.X.String()
	}
	r += " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

var (
	_ error = (*InvalidExpressionError)(nil)
	_ error = DomainError{}
)
