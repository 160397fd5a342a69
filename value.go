package fraccalc

import (
	"math"
	"strconv"
)

// ValueKind is the tag of a Value.
type ValueKind int8

const (
	// ValueRational tags an exact value.
	ValueRational ValueKind = iota
	// ValueFloat tags an inexact float64 value.
	ValueFloat
)

// Value is the result of evaluating an expression: either an exact Rational
// or an inexact float64. The zero value is exact zero.
type Value struct {
	kind ValueKind
	r    Rational
	x    float64
}

// Exact creates an exact value.
func Exact(r Rational) Value {
	return Value{kind: ValueRational, r: r}
}

// Inexact creates an inexact value.
func Inexact(x float64) Value {
	return Value{kind: ValueFloat, x: x}
}

// Kind returns the tag of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsExact reports whether v is a Rational.
func (v Value) IsExact() bool {
	return v.kind == ValueRational
}

// Rational returns the exact value of v and true, or false if v is inexact.
func (v Value) Rational() (Rational, bool) {
	return v.r, v.kind == ValueRational
}

// Float64 returns v as a float64. Exact values outside the range of float64
// are ErrOverflow.
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case ValueRational:
		return v.r.Float64()
	case ValueFloat:
		return v.x, nil
	default:
		panic("fraccalc: invalid value kind " + v.kind.String())
	}
}

// ToRational returns v as a Rational, converting inexact values with
// NumberToRational.
func (v Value) ToRational() (Rational, error) {
	switch v.kind {
	case ValueRational:
		return v.r, nil
	case ValueFloat:
		return NumberToRational(v.x)
	default:
		panic("fraccalc: invalid value kind " + v.kind.String())
	}
}

// Sign returns -1, 0, or 1 according to the sign of v. NaN has sign 0.
func (v Value) Sign() int {
	switch v.kind {
	case ValueRational:
		return v.r.Sign()
	case ValueFloat:
		switch {
		case v.x < 0:
			return -1
		case v.x > 0:
			return 1
		default:
			return 0
		}
	default:
		panic("fraccalc: invalid value kind " + v.kind.String())
	}
}

// Neg returns -v with the same exactness.
func (v Value) Neg() Value {
	switch v.kind {
	case ValueRational:
		return Exact(v.r.Neg())
	case ValueFloat:
		return Inexact(-v.x)
	default:
		panic("fraccalc: invalid value kind " + v.kind.String())
	}
}

// String formats exact values as fractions and inexact values in the
// shortest representation that round-trips.
func (v Value) String() string {
	switch v.kind {
	case ValueRational:
		return v.r.String()
	case ValueFloat:
		return strconv.FormatFloat(v.x, 'g', -1, 64)
	default:
		return "<" + v.kind.String() + ">"
	}
}

// approx returns a float64 for error messages, even if v is out of range.
func (v Value) approx() float64 {
	if v.kind == ValueRational {
		f, _ := v.r.Rat().Float64()
		return f
	}
	return v.x
}

// checkFloat reports NaN as a domain error of op and infinities as
// ErrOverflow.
func checkFloat(op string, x float64) error {
	switch {
	case math.IsNaN(x):
		return &DomainError{X: x, Func: op}
	case math.IsInf(x, 0):
		return ErrOverflow
	default:
		return nil
	}
}

// inexact wraps a float result of op, rejecting NaN and infinities.
func inexact(op string, x float64) (Value, error) {
	if err := checkFloat(op, x); err != nil {
		return Value{}, err
	}
	return Inexact(x), nil
}
