package fraccalc

import (
	"errors"
	"strconv"
)

// Arithmetic errors. These carry no position; they may come from any operator
// or function in an expression, or from direct use of Rational.
var (
	// ErrDivideByZero is returned for a division or reciprocal of zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrInvalidExponent is returned for an exact power whose exponent is
	// not an integer.
	ErrInvalidExponent = errors.New("exponent must be an integer")
	// ErrOverflow is returned when a result is too large to represent: an
	// exact power above MaxExactBits, or a float result that is infinite.
	ErrOverflow = errors.New("result too large")
)

// SettingError is an error indicating an out-of-range setting.
type SettingError struct {
	// Name is the name of the setting field.
	Name string
	// Value is the rejected value.
	Value string
}

func (err *SettingError) Error() string {
	return "invalid " + err.Name + " " + strconv.Quote(err.Value)
}

// ErrorKind classifies errors returned from this package.
type ErrorKind int8

const (
	// KindNone is the kind of nil and of errors not from this package.
	KindNone ErrorKind = iota
	KindDivideByZero
	KindInvalidExponent
	KindInvalidCharacter
	KindUnknownIdentifier
	KindMismatchedParentheses
	KindInvalidExpression
	KindDomain // DomainError
	KindOverflow
	KindInvalidSetting
)

// KindOf returns the kind of an error. Wrapped errors are unwrapped.
func KindOf(err error) ErrorKind {
	var (
		ce *CharError
		ie *IdentError
		be *BracketError
		ee *ExpressionError
		ne *NumberError
		de *DomainError
		se *SettingError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrDivideByZero):
		return KindDivideByZero
	case errors.Is(err, ErrInvalidExponent):
		return KindInvalidExponent
	case errors.Is(err, ErrOverflow):
		return KindOverflow
	case errors.As(err, &ce):
		return KindInvalidCharacter
	case errors.As(err, &ie):
		return KindUnknownIdentifier
	case errors.As(err, &be):
		return KindMismatchedParentheses
	case errors.As(err, &ee), errors.As(err, &ne):
		return KindInvalidExpression
	case errors.As(err, &de):
		return KindDomain
	case errors.As(err, &se):
		return KindInvalidSetting
	default:
		return KindNone
	}
}
