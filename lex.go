package fraccalc

import (
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer, decimal, simple fraction, or mixed number.
	// Mixed numbers are normalized to "w n/d" with a single space.
	tokenNum
	// tokenConst is π or e.
	tokenConst
	// tokenFunc is a function name, lowercased.
	tokenFunc
	// tokenOp is an operator, normalized to one of Operators.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go run golang.org/x/tools/cmd/stringer -type=ValueKind -trimprefix=Value
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind -trimprefix=Kind -linecomment
//go:generate go run golang.org/x/tools/cmd/stringer -type=AngleMode -linecomment
//go:generate go mod tidy

// Operators contains the canonical operator symbols. Unary minus shares the
// symbol of subtraction.
const Operators = "+-×÷^%"

// opglyphs maps each rune accepted as an operator to its canonical symbol.
// A / that does not separate the parts of a fraction is division.
var opglyphs = map[rune]string{
	'+': "+",
	'-': "-",
	'−': "-",
	'*': "×",
	'×': "×",
	'·': "×",
	'/': "÷",
	'÷': "÷",
	'^': "^",
	'%': "%",
}

type lexer struct {
	src []rune
	// i is the index of the next rune to scan.
	i int
	// hyphen allows a hyphen between the parts of a mixed number.
	hyphen bool
}

func lex(src string, hyphen bool) *lexer {
	return &lexer{src: []rune(src), hyphen: hyphen}
}

// tokenize scans all tokens in src, not including the final EOF token.
func tokenize(src string, hyphen bool) ([]lexToken, error) {
	l := lex(src, hyphen)
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token positioned one past the last rune.
func (l *lexer) next() (lexToken, error) {
	for l.i < len(l.src) {
		r := l.src[l.i]
		pos := l.i + 1
		switch {
		case unicode.IsSpace(r):
			l.i++
		case '0' <= r && r <= '9', r == '.':
			return l.scanNum(pos)
		case r == 'π':
			l.i++
			return lexToken{text: "π", kind: tokenConst, pos: pos}, nil
		case unicode.IsLetter(r):
			return l.scanIdent(pos)
		case r == '(':
			l.i++
			return lexToken{text: "(", kind: tokenOpen, pos: pos}, nil
		case r == ')':
			l.i++
			return lexToken{text: ")", kind: tokenClose, pos: pos}, nil
		default:
			if op, ok := opglyphs[r]; ok {
				l.i++
				return lexToken{text: op, kind: tokenOp, pos: pos}, nil
			}
			return lexToken{pos: pos}, &CharError{Col: pos, Char: r}
		}
	}
	return lexToken{kind: tokenEOF, pos: len(l.src) + 1}, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// digits returns the index following the run of digits that starts at i.
func (l *lexer) digits(i int) int {
	for i < len(l.src) && isDigit(l.src[i]) {
		i++
	}
	return i
}

// fraction checks for a simple fraction "n/d" starting at i. If there is one,
// the result is the index following it; otherwise it is -1. A denominator
// followed by a decimal point is not a fraction, so that "1/2.5" divides.
func (l *lexer) fraction(i int) int {
	j := l.digits(i)
	if j == i || j >= len(l.src) || l.src[j] != '/' {
		return -1
	}
	k := l.digits(j + 1)
	if k == j+1 || k < len(l.src) && l.src[k] == '.' {
		return -1
	}
	return k
}

// scanNum scans a number starting at the current rune, which must be a digit
// or decimal point. Integers may continue into a simple fraction, or, after
// whitespace (or a hyphen, if enabled), into a mixed number.
func (l *lexer) scanNum(pos int) (lexToken, error) {
	start := l.i
	if k := l.fraction(start); k >= 0 {
		l.i = k
		return lexToken{text: string(l.src[start:k]), kind: tokenNum, pos: pos}, nil
	}
	var dig, dot bool
	for ; l.i < len(l.src); l.i++ {
		r := l.src[l.i]
		if isDigit(r) {
			dig = true
			continue
		}
		if r != '.' {
			break
		}
		if dot {
			return lexToken{pos: pos}, &CharError{Col: l.i + 1, Char: r}
		}
		dot = true
	}
	if !dig {
		return lexToken{pos: pos}, &CharError{Col: pos, Char: '.'}
	}
	whole := string(l.src[start:l.i])
	if !dot {
		if frac, ok := l.scanMixed(); ok {
			return lexToken{text: whole + " " + frac, kind: tokenNum, pos: pos}, nil
		}
	}
	return lexToken{text: whole, kind: tokenNum, pos: pos}, nil
}

// scanMixed checks for the fractional part of a mixed number following a
// scanned whole part. If there is one, it is consumed and returned.
func (l *lexer) scanMixed() (string, bool) {
	j := l.i
	for j < len(l.src) && unicode.IsSpace(l.src[j]) {
		j++
	}
	if j == l.i {
		if !l.hyphen || j >= len(l.src) || l.src[j] != '-' {
			return "", false
		}
		j++
	}
	k := l.fraction(j)
	if k < 0 {
		return "", false
	}
	l.i = k
	return string(l.src[j:k]), true
}

// scanIdent scans a run of letters, which must name a constant or a function.
func (l *lexer) scanIdent(pos int) (lexToken, error) {
	start := l.i
	for l.i < len(l.src) && l.src[l.i] != 'π' && unicode.IsLetter(l.src[l.i]) {
		l.i++
	}
	text := string(l.src[start:l.i])
	name := strings.ToLower(text)
	switch name {
	case "e":
		return lexToken{text: "e", kind: tokenConst, pos: pos}, nil
	case "pi":
		return lexToken{text: "π", kind: tokenConst, pos: pos}, nil
	}
	if _, ok := globalfuncs[name]; ok {
		return lexToken{text: name, kind: tokenFunc, pos: pos}, nil
	}
	return lexToken{pos: pos}, &IdentError{Col: pos, Name: text}
}
