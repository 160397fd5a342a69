package fraccalc

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestOperatorsExist(t *testing.T) {
	for _, op := range Operators {
		if _, ok := operators[string(op)]; !ok {
			t.Errorf("no operator entry for %q", op)
		}
	}
	if _, ok := operators[negop]; !ok {
		t.Errorf("no operator entry for unary minus")
	}
}

func TestOperatorPrecedence(t *testing.T) {
	cases := []struct {
		hi, lo string
	}{
		{"×", "+"},
		{"÷", "-"},
		{"%", "×"},
		{"^", "%"},
		{negop, "^"},
	}
	for _, c := range cases {
		if operators[c.hi].prec <= operators[c.lo].prec {
			t.Errorf("%s does not bind more tightly than %s", c.hi, c.lo)
		}
	}
	if !operators["^"].right || !operators[negop].right {
		t.Errorf("^ and unary minus must be right-associative")
	}
	if operators["+"].right || operators["×"].right {
		t.Errorf("+ and × must be left-associative")
	}
}

func TestParsePostfix(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		hyphen bool
		rpn    string
	}{
		{"num", "1", false, "1"},
		{"fraction", "3/8", false, "3/8"},
		{"mixed", "1 3/8", false, "[1 3/8]"},
		{"mixed-hyphen", "1-3/8", true, "[1 3/8]"},
		{"sub-fraction", "1-3/8", false, "1 3/8 -"},
		{"add", "1+2+3", false, "1 2 + 3 +"},
		{"sub", "4-5-6", false, "4 5 - 6 -"},
		{"mul-add", "1+2×3", false, "1 2 3 × +"},
		{"add-mul", "1×2+3", false, "1 2 × 3 +"},
		{"div", "8÷4÷2", false, "8 4 ÷ 2 ÷"},
		{"glyphs", "1*2/3.5", false, "1 2 × 3.5 ÷"},
		{"pow-right", "2^3^2", false, "2 3 2 ^ ^"},
		{"neg-pow", "-3^2", false, "3 neg 2 ^"},
		{"pow-neg", "2^-1", false, "2 1 neg ^"},
		{"sub-neg", "3 - -2", false, "3 2 neg -"},
		{"neg-neg", "--2", false, "2 neg neg"},
		{"paren-neg", "(-2)", false, "2 neg"},
		{"percent", "50%", false, "50 %"},
		{"percent-add", "200+50%", false, "200 50 % +"},
		{"percent-sub", "50%-1", false, "50 % 1 -"},
		{"percent-pow", "2^50%", false, "2 50 ^ %"},
		{"parens", "(1+2)×3", false, "1 2 + 3 ×"},
		{"nested", "((1))", false, "1"},
		{"call-paren", "sqrt(4)+1", false, "4 sqrt 1 +"},
		{"call-bare", "sqrt 4 + 1", false, "4 sqrt 1 +"},
		{"call-neg", "sqrt -4", false, "4 neg sqrt"},
		{"call-nested", "sin(cos(0))", false, "0 cos sin"},
		{"call-arg-expr", "ln(2×e)", false, "2 e × ln"},
		{"const", "2×pi", false, "2 π ×"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src, HyphenMixed(c.hyphen))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := e.String(); got != c.rpn {
				t.Errorf("%q: want %q, got %q", c.src, c.rpn, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		pos  int
		res  []string
	}{
		{"left", "(1+2", new(BracketError), 1, []string{`(?i)\bbracket\b`, `\(`}},
		{"right", "1+2)", new(BracketError), 4, []string{`(?i)\bbracket\b`, `\)`}},
		{"left-inner", "((1)", new(BracketError), 1, []string{`\(`}},
		{"right-inner", "(1))+(2", new(BracketError), 4, []string{`\)`}},
		{"call-unclosed", "sqrt(4", new(BracketError), 5, []string{`\(`}},
		{"char", "1 & 2", new(CharError), 3, []string{`'&'`}},
		{"ident", "foo(2)", new(IdentError), 1, []string{`"foo"`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			if got := err.(InputError).Pos(); got != c.pos {
				t.Errorf("wrong position from %q: want %d, got %d", c.src, c.pos, got)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestWithSettings(t *testing.T) {
	s := DefaultSettings()
	s.HyphenMixed = true
	e, err := Parse("2-1/2", WithSettings(s))
	if err != nil {
		t.Fatal(err)
	}
	if got := e.String(); got != "[2 1/2]" {
		t.Errorf("hyphen setting not applied: got %q", got)
	}
	// Later options override earlier ones.
	e, err = Parse("2-1/2", WithSettings(s), HyphenMixed(false))
	if err != nil {
		t.Fatal(err)
	}
	if got := e.String(); got != "2 1/2 -" {
		t.Errorf("hyphen option not overridden: got %q", got)
	}
}

func TestSortstrs(t *testing.T) {
	s := strings.Fields("tan sqrt sqr sin ln log cos")
	sortstrs(s)
	want := strings.Fields("cos ln log sin sqr sqrt tan")
	if !reflect.DeepEqual(s, want) {
		t.Errorf("want %q, got %q", want, s)
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"descasc", "2^3×4+5+6×7^8"},
		{"descasc-parens", "(((2^3)×4)+5)+6×(7^8)"},
		{"ascdesc", "2+3×4^5^6×7+8"},
		{"mixed", "1 3/8 + 2 5/16 × 3/4 - 7/8"},
		{"calls", "sin(30) + cos 60 + sqrt(ln(e^2))"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Parse(c.src)
			}
		})
	}
}
