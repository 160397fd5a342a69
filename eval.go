package fraccalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []Value
	angle AngleMode
}

// NewContext creates a new evaluation context using the angle mode of s.
func NewContext(s Settings) *Context {
	return &Context{angle: s.Angle}
}

// Angle returns the angle mode of trigonometric functions in the context.
func (ctx *Context) Angle() AngleMode {
	return ctx.angle
}

// Eval evaluates an expression and returns the result. If an operand is
// outside the domain of an operator or function, or the expression does not
// reduce to a single value, the result is an error and no value.
func (ctx *Context) Eval(e *Expr) (Value, error) {
	if len(ctx.stack) != 0 {
		panic("fraccalc: Eval during Eval")
	}
	defer func() {
		clear(ctx.stack[:cap(ctx.stack)])
		ctx.stack = ctx.stack[:0]
	}()
	for _, tok := range e.rpn {
		if err := ctx.step(tok); err != nil {
			return Value{}, err
		}
	}
	if len(ctx.stack) != 1 {
		return Value{}, &ExpressionError{Depth: len(ctx.stack)}
	}
	return ctx.stack[0], nil
}

func (ctx *Context) push(v Value) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top n values from the stack and returns them in order from
// deepest to top. If there are fewer than n, the result is an error naming the
// token that needed them. The returned slice is only valid until the next push.
func (ctx *Context) pop(tok lexToken, n int) ([]Value, error) {
	k := len(ctx.stack) - n
	if k < 0 {
		op := tok.text
		if op == negop {
			op = "-"
		}
		return nil, &ExpressionError{Col: tok.pos, Op: op}
	}
	r := ctx.stack[k:]
	ctx.stack = ctx.stack[:k]
	return r, nil
}

// step applies one postfix token to the stack.
func (ctx *Context) step(tok lexToken) error {
	switch tok.kind {
	case tokenNum:
		r, err := parseLiteral(tok.text)
		if err != nil {
			return err
		}
		ctx.push(Exact(r))
	case tokenConst:
		switch tok.text {
		case "π":
			ctx.push(Inexact(math.Pi))
		case "e":
			ctx.push(Inexact(math.E))
		default:
			panic("fraccalc: unknown constant " + tok.text)
		}
	case tokenFunc:
		args, err := ctx.pop(tok, 1)
		if err != nil {
			return err
		}
		f := globalfuncs[tok.text]
		if f == nil {
			panic("fraccalc: unknown function " + tok.text)
		}
		v, err := f(ctx, args[0])
		if err != nil {
			return err
		}
		ctx.push(v)
	case tokenOp:
		o, ok := operators[tok.text]
		if !ok {
			panic("fraccalc: unknown operator " + tok.text)
		}
		args, err := ctx.pop(tok, int(o.arity))
		if err != nil {
			return err
		}
		var v Value
		switch tok.text {
		case negop:
			v = args[0].Neg()
		case "%":
			v, err = percent(args[0])
		default:
			v, err = arith(tok.text, args[0], args[1])
		}
		if err != nil {
			return err
		}
		ctx.push(v)
	default:
		panic("fraccalc: invalid postfix token " + tok.String())
	}
	return nil
}

var hundredth = Rational{n: bigOne, d: big.NewInt(100)}

// percent divides by 100, keeping exact values exact.
func percent(a Value) (Value, error) {
	switch a.kind {
	case ValueRational:
		return Exact(a.r.Mul(hundredth)), nil
	case ValueFloat:
		return inexact("%", a.x/100)
	default:
		panic("fraccalc: invalid value kind " + a.kind.String())
	}
}

// arith applies a binary operator. The result is exact when both operands are
// exact, except for powers with non-integer exponents.
func arith(op string, a, b Value) (Value, error) {
	if a.kind == ValueRational && b.kind == ValueRational {
		switch op {
		case "+":
			return Exact(a.r.Add(b.r)), nil
		case "-":
			return Exact(a.r.Sub(b.r)), nil
		case "×":
			return Exact(a.r.Mul(b.r)), nil
		case "÷":
			r, err := a.r.Quo(b.r)
			if err != nil {
				return Value{}, err
			}
			return Exact(r), nil
		case "^":
			if b.r.IsInt() {
				r, err := a.r.Pow(b.r)
				if err != nil {
					return Value{}, err
				}
				return Exact(r), nil
			}
			return ratPow(a.r, b.r)
		default:
			panic("fraccalc: unknown operator " + op)
		}
	}
	x, err := a.Float64()
	if err != nil {
		return Value{}, err
	}
	y, err := b.Float64()
	if err != nil {
		return Value{}, err
	}
	switch op {
	case "+":
		return inexact(op, x+y)
	case "-":
		return inexact(op, x-y)
	case "×":
		return inexact(op, x*y)
	case "÷":
		if y == 0 {
			return Value{}, ErrDivideByZero
		}
		return inexact(op, x/y)
	case "^":
		if x == 0 && y < 0 {
			return Value{}, ErrDivideByZero
		}
		return inexact(op, math.Pow(x, y))
	default:
		panic("fraccalc: unknown operator " + op)
	}
}

// ratPow computes a^b for exact a and exact non-integer b. The power is
// computed in big.Float and rounded once.
func ratPow(a, b Rational) (Value, error) {
	switch a.Sign() {
	case -1:
		x, _ := a.Rat().Float64()
		return Value{}, &DomainError{X: x, Func: "^"}
	case 0:
		if b.Sign() < 0 {
			return Value{}, ErrDivideByZero
		}
		return Inexact(0), nil
	}
	x := new(big.Float).SetPrec(floatPrec).SetRat(a.Rat())
	y := new(big.Float).SetPrec(floatPrec).SetRat(b.Rat())
	// Estimate the natural log of the result first. Powers far outside the
	// range of float64 overflow or vanish without computing them.
	ln := new(big.Float).SetPrec(floatPrec)
	bigfloat.Log(ln, new(big.Float).Copy(x))
	ln.Mul(ln, y)
	t, _ := ln.Float64()
	switch {
	case t > 710:
		return Value{}, ErrOverflow
	case t < -746:
		return Inexact(0), nil
	}
	z := new(big.Float).SetPrec(floatPrec)
	bigfloat.Pow(z, x, y)
	f, _ := z.Float64()
	return inexact("^", f)
}

// Evaluate parses and evaluates an expression under the given settings.
func Evaluate(expr string, s Settings) (Value, error) {
	if err := s.Validate(); err != nil {
		return Value{}, err
	}
	e, err := Parse(expr, WithSettings(s))
	if err != nil {
		return Value{}, err
	}
	return NewContext(s).Eval(e)
}
