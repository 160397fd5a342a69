package fraccalc

// Expr = num | const | Call | Neg | Percent | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = funcname Expr | funcname '(' Expr ')'
// Neg = '-' Expr
// Percent = Expr '%'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '×' Expr | Expr '*' Expr
// Div = Expr '÷' Expr | Expr '/' Expr
// Pow = Expr '^' Expr

// Parse parses an expression so it can be evaluated with a context. The given
// options are applied in order.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	toks, err := tokenize(src, p.hyphen)
	if err != nil {
		return nil, err
	}
	rpn, err := postfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// postfix reorders tokens from infix to postfix with the shunting-yard
// algorithm. Unary minus is rewritten to negop.
//
// Function names wait on the operator stack until their argument is complete:
// either the matching close paren, or the next binary or postfix operator, so
// that "sqrt 4 + 1" is sqrt(4) + 1. Unary minus never pops anything, since
// its operand has not been seen yet.
func postfix(toks []lexToken) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	var stack []lexToken
	prev := lexToken{}
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum, tokenConst:
			out = append(out, tok)
		case tokenFunc, tokenOpen:
			stack = append(stack, tok)
		case tokenOp:
			if tok.text == "-" && unaryPosition(prev) {
				stack = append(stack, lexToken{text: negop, kind: tokenOp, pos: tok.pos})
				break
			}
			o := operators[tok.text]
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenFunc && (top.kind != tokenOp || !o.pops(operators[top.text])) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &BracketError{Col: tok.pos}
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		default:
			panic("fraccalc: unknown token: " + tok.String())
		}
		prev = tok
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Open: true}
		}
		out = append(out, top)
	}
	return out, nil
}

// unaryPosition reports whether a - following prev is unary minus: at the
// start of the input, or after an open paren, a function name, or any
// operator except postfix %.
func unaryPosition(prev lexToken) bool {
	switch prev.kind {
	case tokenNone, tokenOpen, tokenFunc:
		return true
	case tokenOp:
		return prev.text != "%"
	default:
		return false
	}
}
