package fraccalc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zephyrtronium/fraccalc"
)

func TestDefaultSettings(t *testing.T) {
	s := fraccalc.DefaultSettings()
	want := fraccalc.Settings{
		Angle:     fraccalc.Degrees,
		MaxDenom:  16,
		TradeStep: 16,
		Precision: 6,
	}
	if s != want {
		t.Errorf("want %+v, got %+v", want, s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults are invalid: %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name  string
		set   func(*fraccalc.Settings)
		field string
	}{
		{"angle", func(s *fraccalc.Settings) { s.Angle = 7 }, "Angle"},
		{"max-denom", func(s *fraccalc.Settings) { s.MaxDenom = 0 }, "MaxDenom"},
		{"trade-step", func(s *fraccalc.Settings) { s.TradeStep = -16 }, "TradeStep"},
		{"precision-neg", func(s *fraccalc.Settings) { s.Precision = -1 }, "Precision"},
		{"precision-big", func(s *fraccalc.Settings) { s.Precision = fraccalc.MaxPrecision + 1 }, "Precision"},
		{"ok-precision", func(s *fraccalc.Settings) { s.Precision = fraccalc.MaxPrecision }, ""},
		{"ok-radians", func(s *fraccalc.Settings) { s.Angle = fraccalc.Radians }, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := fraccalc.DefaultSettings()
			c.set(&s)
			err := s.Validate()
			if c.field == "" {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			var se *fraccalc.SettingError
			if !errors.As(err, &se) {
				t.Fatalf("want SettingError, got %#v", err)
			}
			if se.Name != c.field {
				t.Errorf("want error on %s, got %s", c.field, se.Name)
			}
		})
	}
}

func TestParseAngleMode(t *testing.T) {
	cases := []struct {
		s    string
		want fraccalc.AngleMode
		ok   bool
	}{
		{"DEG", fraccalc.Degrees, true},
		{"deg", fraccalc.Degrees, true},
		{"Degrees", fraccalc.Degrees, true},
		{"RAD", fraccalc.Radians, true},
		{"radians", fraccalc.Radians, true},
		{"grad", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		m, err := fraccalc.ParseAngleMode(c.s)
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected error result %v", c.s, err)
			continue
		}
		if c.ok && m != c.want {
			t.Errorf("%q: want %v, got %v", c.s, c.want, m)
		}
	}
	for _, m := range []fraccalc.AngleMode{fraccalc.Degrees, fraccalc.Radians} {
		back, err := fraccalc.ParseAngleMode(m.String())
		if err != nil || back != m {
			t.Errorf("%v does not round-trip: %v, %v", m, back, err)
		}
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want fraccalc.ErrorKind
	}{
		{nil, fraccalc.KindNone},
		{errors.New("other"), fraccalc.KindNone},
		{fraccalc.ErrDivideByZero, fraccalc.KindDivideByZero},
		{fmt.Errorf("wrapped: %w", fraccalc.ErrDivideByZero), fraccalc.KindDivideByZero},
		{fraccalc.ErrInvalidExponent, fraccalc.KindInvalidExponent},
		{fraccalc.ErrOverflow, fraccalc.KindOverflow},
		{&fraccalc.CharError{Col: 1, Char: '$'}, fraccalc.KindInvalidCharacter},
		{&fraccalc.IdentError{Col: 1, Name: "x"}, fraccalc.KindUnknownIdentifier},
		{&fraccalc.BracketError{Col: 1, Open: true}, fraccalc.KindMismatchedParentheses},
		{&fraccalc.ExpressionError{Col: 2, Op: "+"}, fraccalc.KindInvalidExpression},
		{&fraccalc.NumberError{Text: "x"}, fraccalc.KindInvalidExpression},
		{&fraccalc.DomainError{X: -1, Func: "sqrt"}, fraccalc.KindDomain},
		{fmt.Errorf("in memory: %w", &fraccalc.DomainError{X: -1, Func: "ln"}), fraccalc.KindDomain},
		{&fraccalc.SettingError{Name: "MaxDenom", Value: "0"}, fraccalc.KindInvalidSetting},
	}
	for _, c := range cases {
		if got := fraccalc.KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v): want %v, got %v", c.err, c.want, got)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&fraccalc.CharError{Col: 3, Char: '$'}, `3: invalid character '$'`},
		{&fraccalc.IdentError{Col: 1, Name: "foo"}, `1: unknown identifier "foo"`},
		{&fraccalc.BracketError{Col: 1, Open: true}, `1: open bracket ( with no close bracket`},
		{&fraccalc.BracketError{Col: 4}, `4: close bracket ) with no open bracket`},
		{&fraccalc.ExpressionError{Col: 3, Op: "+"}, `3: missing operand for "+"`},
		{&fraccalc.ExpressionError{}, `0: no expression`},
		{&fraccalc.ExpressionError{Depth: 2}, `0: expression leaves 2 values`},
		{&fraccalc.DomainError{X: -4, Func: "sqrt"}, `-4 outside domain of sqrt`},
		{&fraccalc.SettingError{Name: "TradeStep", Value: "0"}, `invalid TradeStep "0"`},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestKindNames(t *testing.T) {
	cases := []struct {
		k    fmt.Stringer
		want string
	}{
		{fraccalc.KindNone, "None"},
		{fraccalc.KindDomain, "DomainError"},
		{fraccalc.KindInvalidSetting, "InvalidSetting"},
		{fraccalc.ErrorKind(42), "ErrorKind(42)"},
		{fraccalc.Degrees, "DEG"},
		{fraccalc.Radians, "RAD"},
		{fraccalc.AngleMode(7), "AngleMode(7)"},
		{fraccalc.ValueRational, "Rational"},
		{fraccalc.ValueFloat, "Float"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}
