package fraccalc

import "strconv"

// CharError is an error indicating a character that cannot begin any token.
// It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the character that was not understood.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// IdentError is an error indicating a run of letters that names neither a
// function nor a constant. It implements InputError.
type IdentError struct {
	// Col is the position of the first letter.
	Col int
	// Name is the identifier as written.
	Name string
}

func (err *IdentError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *IdentError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an open parenthesis that
	// was never closed. Otherwise it is a close parenthesis with no open one.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating an expression that does not reduce
// to exactly one value, e.g. "1 +" or "2 3". It implements InputError.
type ExpressionError struct {
	// Col is the position of the operator or function that was missing an
	// operand, or 0 if the whole expression failed to reduce.
	Col int
	// Op is the operator or function that was missing an operand. It is empty
	// if the expression left Depth values instead of one.
	Op string
	// Depth is the number of values left after evaluating the expression.
	Depth int
}

func (err *ExpressionError) Error() string {
	switch {
	case err.Op != "":
		return errpos(err.Col, "missing operand for "+strconv.Quote(err.Op))
	case err.Depth == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, "expression leaves "+strconv.Itoa(err.Depth)+" values")
	}
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// NumberError is an error indicating text that is not a number. ParseMixed
// returns it for input that is not a single, optionally signed, number.
type NumberError struct {
	// Text is the rejected text.
	Text string
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// malformed input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*IdentError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ExpressionError)(nil)
)
