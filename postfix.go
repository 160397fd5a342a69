package fraccalc

import (
	"strings"
)

// Expr is a parsed expression in postfix order. An Expr is immutable and may
// be evaluated any number of times, concurrently with different contexts.
type Expr struct {
	rpn []lexToken
}

// String renders the expression in postfix notation, with tokens separated by
// spaces. Unary minus is written as "neg", and mixed numbers are bracketed so
// that their parts stay together, e.g. "[1 3/8] 2 ×".
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tok.kind == tokenNum && strings.IndexByte(tok.text, ' ') >= 0 {
			b.WriteByte('[')
			b.WriteString(tok.text)
			b.WriteByte(']')
			continue
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// arity is the number of operands.
	arity int8
}

// pops reports whether o, arriving at the parser, pops top from the operator
// stack: top binds more tightly, or equally and o is left-associative.
func (o operator) pops(top operator) bool {
	if o.right {
		return top.prec > o.prec
	}
	return top.prec >= o.prec
}

// negop is the token text for unary minus in the postfix stream.
const negop = "neg"

var operators = map[string]operator{
	"+":   {prec: 2, arity: 2},
	"-":   {prec: 2, arity: 2},
	"×":   {prec: 3, arity: 2},
	"÷":   {prec: 3, arity: 2},
	"%":   {prec: 4, arity: 1},
	"^":   {prec: 5, right: true, arity: 2},
	negop: {prec: 6, right: true, arity: 1},
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
