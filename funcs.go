package fraccalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// floatPrec is the precision used for functions of exact operands before
// rounding to float64. The extra bits keep a rational too large for float64
// from overflowing when its logarithm or root is not.
const floatPrec = 80

// Func is a function of one real operand. Functions receive the evaluating
// context for its angle mode.
type Func func(ctx *Context, x Value) (Value, error)

var globalfuncs = map[string]Func{
	"sin":  trig("sin", math.Sin),
	"cos":  trig("cos", math.Cos),
	"tan":  trig("tan", math.Tan),
	"log":  Monadic("log", true, math.Log10, log10),
	"ln":   Monadic("ln", true, math.Log, bigfloat.Log),
	"sqrt": Monadic("sqrt", false, math.Sqrt, (*big.Float).Sqrt),
	"sqr":  sqr,
}

// FuncNames returns the names of the functions expressions may call, sorted.
func FuncNames() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// trig wraps a trigonometric function. Arguments are converted from degrees
// first when the context's angle mode is Degrees. Exact arguments in degrees
// are reduced to one turn before conversion, so they never overflow.
func trig(name string, f func(float64) float64) Func {
	return func(ctx *Context, x Value) (Value, error) {
		if r, ok := x.Rational(); ok && ctx.angle == Degrees {
			x = Exact(turn(r))
		}
		t, err := x.Float64()
		if err != nil {
			return Value{}, err
		}
		if ctx.angle == Degrees {
			t *= math.Pi / 180
		}
		return inexact(name, f(t))
	}
}

// turn reduces an angle in degrees to [0, 360).
func turn(r Rational) Rational {
	d := new(big.Int).Set(r.den())
	m := new(big.Int).Mul(d, big.NewInt(360))
	return reduce(new(big.Int).Mod(r.num(), m), d)
}

// Monadic wraps a function defined on the non-negative reals, or on the
// positive reals if positive is true, into a Func. Float operands use
// fast. Exact operands are converted to big.Float and use precise, so that
// e.g. the logarithm of a rational beyond float64 range is still finite.
// precise must set out to its result to the precision of out; its return value
// is ignored. If it panics with big.ErrNaN, the result is a DomainError.
func Monadic(name string, positive bool, fast func(float64) float64, precise func(out, in *big.Float) *big.Float) Func {
	return func(ctx *Context, x Value) (Value, error) {
		if s := x.Sign(); s < 0 || positive && s == 0 {
			return Value{}, &DomainError{X: x.approx(), Func: name}
		}
		r, ok := x.Rational()
		if !ok {
			return inexact(name, fast(x.x))
		}
		return bigcall(name, r, precise)
	}
}

// bigcall evaluates f on an exact operand in big.Float, then rounds.
func bigcall(name string, r Rational, f func(out, in *big.Float) *big.Float) (v Value, err error) {
	in := new(big.Float).SetPrec(floatPrec).SetRat(r.Rat())
	out := new(big.Float).SetPrec(floatPrec)
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok || !errors.As(e, &big.ErrNaN{}) {
			panic(p)
		}
		x, _ := r.Rat().Float64()
		v, err = Value{}, &DomainError{X: x, Func: name}
	}()
	f(out, in)
	x, _ := out.Float64()
	return inexact(name, x)
}

// log10 is the base-10 logarithm in big.Float.
func log10(out, in *big.Float) *big.Float {
	bigfloat.Log(out, in)
	ten := new(big.Float).SetPrec(out.Prec()).SetInt64(10)
	bigfloat.Log(ten, ten)
	return out.Quo(out, ten)
}

// sqr squares its operand, keeping exact operands exact.
func sqr(ctx *Context, x Value) (Value, error) {
	if r, ok := x.Rational(); ok {
		return Exact(r.Mul(r)), nil
	}
	return inexact("sqr", x.x*x.x)
}

// DomainError is an error returned when a function or operator is applied to
// an operand outside its domain.
type DomainError struct {
	// X is the out-of-domain operand. For an operation that produced NaN, X
	// is NaN.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}
