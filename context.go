package exprtree

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Context evaluates expressions with arbitrary precision. It is not safe to
// use a Context concurrently.
type Context struct {
	nums map[string]*big.Float
	prec uint
	res  *big.Float
	err  error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			ctx.prec = uint(opt)
		default:
			panic("exprtree: unknown option type")
		}
	}
	return &ctx
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero or an operand that is not a number, then the result
// is nil and ctx.Err returns the error. Evaluation follows the same order and
// treats degenerate nodes the same way as Expr.Eval.
func (ctx *Context) Eval(e *Expr) *big.Float {
	ctx.res, ctx.err = ctx.eval(e.n)
	return ctx.res
}

// Result returns the result of the last evaluation, or nil if it failed or if
// no expression has been evaluated.
func (ctx *Context) Result() *big.Float {
	return ctx.res
}

// Err returns the error from the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

func (ctx *Context) eval(n *node) (*big.Float, error) {
	if n.leaf() {
		v, err := ctx.num(n.text)
		if err != nil {
			return nil, err
		}
		return new(big.Float).SetPrec(ctx.prec).Set(v), nil
	}
	l := new(big.Float).SetPrec(ctx.prec)
	r := new(big.Float).SetPrec(ctx.prec)
	if n.left != nil {
		var err error
		if l, err = ctx.eval(n.left); err != nil {
			return nil, err
		}
	}
	if n.right != nil {
		var err error
		if r, err = ctx.eval(n.right); err != nil {
			return nil, err
		}
	}
	return ctx.apply(n.text, l, r)
}

// apply computes l op r into l.
func (ctx *Context) apply(op string, l, r *big.Float) (z *big.Float, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		z, err = nil, DomainError{X: r, Func: op}
	}()
	switch op {
	case "+":
		return l.Add(l, r), nil
	case "-":
		return l.Sub(l, r), nil
	case "*":
		return l.Mul(l, r), nil
	case "/":
		if r.Sign() == 0 {
			return nil, ErrDivideByZero
		}
		return l.Quo(l, r), nil
	case "^":
		return pow(l, r)
	default:
		return nil, &InvalidExpressionError{Expr: l.Text('f', -1) + " " + op + " " + r.Text('f', -1)}
	}
}

// pow computes x^y into x. bigfloat.Pow only handles finite, positive bases,
// so zeros and infinities are done here.
func pow(x, y *big.Float) (*big.Float, error) {
	switch {
	case x.Sign() < 0:
		// TODO: allow negative base with integer exponent
		return nil, DomainError{X: new(big.Float).Copy(x), Arg: 1, Func: "^"}
	case y.Sign() == 0:
		return x.SetInt64(1), nil
	case x.Sign() == 0:
		if y.Sign() > 0 {
			return x.SetInt64(0), nil
		}
		return x.SetInf(false), nil
	case x.IsInf():
		if y.Sign() > 0 {
			return x, nil
		}
		return x.SetInt64(0), nil
	case y.IsInf():
		c := x.Cmp(big.NewFloat(1))
		switch {
		case c == 0:
			return x, nil
		case (c > 0) == (y.Sign() > 0):
			return x.SetInf(false), nil
		default:
			return x.SetInt64(0), nil
		}
	}
	return x.Set(bigfloat.Pow(new(big.Float).SetPrec(x.Prec()), x, y)), nil
}

// num gets a possibly cached number from its text. Operands are checked
// the same way as for float64 evaluation, but NaN is outside the domain of
// big.Float.
func (ctx *Context) num(s string) (*big.Float, error) {
	if r := ctx.nums[s]; r != nil {
		return r, nil
	}
	var r *big.Float
	switch literal(s) {
	case litNone:
		return nil, &InvalidExpressionError{Expr: s}
	case litNaN:
		return nil, DomainError{}
	case litInf:
		r = new(big.Float).SetInf(s[0] == '-')
	case litNum:
		var err error
		r, _, err = new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
		switch {
		case err == nil: // do nothing
		case err.Error() == "exponent overflow",
			strings.HasSuffix(err.Error(), ": value out of range"):
			// There isn't realistically any better way to detect this error.
			// N.B. s is non-empty, otherwise we couldn't overflow.
			r = new(big.Float).SetInf(s[0] == '-')
		default:
			return nil, &InvalidExpressionError{Expr: s}
		}
	}
	ctx.nums[s] = r
	return r, nil
}
