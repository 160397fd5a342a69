package fraccalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/fraccalc"
)

func TestBestFit(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		maxDen int64
		tol    float64
		want   string
	}{
		{"third", 0.333333, 16, 1e-6, "1/3"},
		{"neg-third", -0.333333, 16, 1e-6, "-1/3"},
		{"zero", 0, 16, 1e-12, "0"},
		{"int", 3, 16, 1e-12, "3"},
		{"near-int", 2.9999999999999, 16, 1e-12, "3"},
		{"half", 0.5, 16, 1e-12, "1/2"},
		{"pi-7", math.Pi, 7, 1e-12, "22/7"},
		{"pi-113", math.Pi, 113, 1e-12, "355/113"},
		{"sixteenth", 0.0625, 16, 1e-12, "1/16"},
		{"point-three", 0.3, 16, 1e-12, "3/10"},
		{"semiconvergent", 0.3, 8, 1e-12, "2/7"},
		{"convergent-over-semi", math.Pi, 16, 1e-12, "22/7"},
		{"den-1", 0.7, 1, 1e-12, "1"},
		{"large", 12345.5, 16, 1e-12, "24691/2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := fraccalc.BestFit(c.x, c.maxDen, c.tol)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("BestFit(%g, %d, %g): want %s, got %s", c.x, c.maxDen, c.tol, c.want, got)
			}
			if r.Denom().Int64() > c.maxDen {
				t.Errorf("denominator %v exceeds %d", r.Denom(), c.maxDen)
			}
		})
	}
}

func TestBestFitErrors(t *testing.T) {
	if _, err := fraccalc.BestFit(0.5, 0, 1e-12); fraccalc.KindOf(err) != fraccalc.KindInvalidSetting {
		t.Errorf("maxDen 0: got %v", err)
	}
	if _, err := fraccalc.BestFit(math.NaN(), 16, 1e-12); fraccalc.KindOf(err) != fraccalc.KindDomain {
		t.Errorf("NaN: got %v", err)
	}
	if _, err := fraccalc.BestFit(math.Inf(1), 16, 1e-12); !errors.Is(err, fraccalc.ErrOverflow) {
		t.Errorf("Inf: got %v", err)
	}
}

func TestNumberToRational(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{0.1, "1/10"},
		{0.125, "1/8"},
		{-2.75, "-11/4"},
		{1.0 / 3, "1/3"},
		{0.1 + 0.2, "3/10"},
		{1e20, "100000000000000000000"},
		{math.Sqrt2, "665857/470832"},
	}
	for _, c := range cases {
		r, err := fraccalc.NumberToRational(c.x)
		if err != nil {
			t.Errorf("%g: %v", c.x, err)
			continue
		}
		if got := r.String(); got != c.want {
			t.Errorf("%g: want %s, got %s", c.x, c.want, got)
		}
	}
}

func TestMixedString(t *testing.T) {
	cases := []struct {
		n, d int64
		want string
	}{
		{0, 1, "0"},
		{5, 1, "5"},
		{-5, 1, "-5"},
		{3, 8, "3/8"},
		{-3, 8, "-3/8"},
		{11, 8, "1 3/8"},
		{-11, 8, "-1 3/8"},
		{16, 8, "2"},
	}
	for _, c := range cases {
		r := rat(t, c.n, c.d)
		if got := fraccalc.MixedString(r); got != c.want {
			t.Errorf("%v: want %q, got %q", r, c.want, got)
		}
	}
}

func TestParseMixed(t *testing.T) {
	cases := []struct {
		s    string
		want string
		err  fraccalc.ErrorKind
	}{
		{"1 3/8", "11/8", fraccalc.KindNone},
		{"-1 3/8", "-11/8", fraccalc.KindNone},
		{"1-3/8", "11/8", fraccalc.KindNone},
		{"+3/8", "3/8", fraccalc.KindNone},
		{"  2  ", "2", fraccalc.KindNone},
		{"0.375", "3/8", fraccalc.KindNone},
		{".5", "1/2", fraccalc.KindNone},
		{"4/8", "1/2", fraccalc.KindNone},
		{"1/0", "", fraccalc.KindDivideByZero},
		{"", "", fraccalc.KindInvalidExpression},
		{"1+2", "", fraccalc.KindInvalidExpression},
		{"--1", "", fraccalc.KindInvalidExpression},
		{"pi", "", fraccalc.KindInvalidExpression},
		{"x", "", fraccalc.KindUnknownIdentifier},
		{"1 $", "", fraccalc.KindInvalidCharacter},
	}
	for _, c := range cases {
		r, err := fraccalc.ParseMixed(c.s)
		if k := fraccalc.KindOf(err); k != c.err {
			t.Errorf("%q: want error kind %v, got %v (%v)", c.s, c.err, k, err)
			continue
		}
		if err == nil && r.String() != c.want {
			t.Errorf("%q: want %s, got %v", c.s, c.want, r)
		}
	}
}

func TestMixedRoundTrip(t *testing.T) {
	for n := int64(-40); n <= 40; n++ {
		for d := int64(1); d <= 17; d++ {
			r := rat(t, n, d)
			s := fraccalc.MixedString(r)
			back, err := fraccalc.ParseMixed(s)
			if err != nil {
				t.Errorf("%v: parsing %q: %v", r, s, err)
				continue
			}
			if !back.Equal(r) {
				t.Errorf("%v: %q parsed to %v", r, s, back)
			}
			v, err := fraccalc.Evaluate(s, fraccalc.DefaultSettings())
			if err != nil {
				t.Errorf("%v: evaluating %q: %v", r, s, err)
				continue
			}
			if got, ok := v.Rational(); !ok || !got.Equal(r) {
				t.Errorf("%v: %q evaluated to %v", r, s, v)
			}
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	cases := []struct {
		x    float64
		p    int
		want string
	}{
		{0.5, 6, "0.5"},
		{1.0 / 3, 6, "0.333333"},
		{2, 6, "2"},
		{2.0000001, 6, "2"},
		{-0.0000001, 6, "0"},
		{math.Copysign(0, -1), 6, "0"},
		{1234.5678, 2, "1234.57"},
		{1234.5678, 0, "1235"},
	}
	for _, c := range cases {
		if got := fraccalc.FormatDecimal(c.x, c.p); got != c.want {
			t.Errorf("FormatDecimal(%g, %d): want %q, got %q", c.x, c.p, c.want, got)
		}
	}
}

func TestFormatRational(t *testing.T) {
	cases := []struct {
		n, d int64
		p    int
		want string
	}{
		{1, 2, 6, "0.5"},
		{1, 3, 6, "0.333333"},
		{2, 3, 6, "0.666667"},
		{-2, 3, 6, "-0.666667"},
		{1, 8, 2, "0.13"},
		{-1, 8, 2, "-0.13"},
		{-1, 1000, 2, "0"},
		{7, 1, 3, "7"},
	}
	for _, c := range cases {
		r := rat(t, c.n, c.d)
		if got := fraccalc.FormatRational(r, c.p); got != c.want {
			t.Errorf("FormatRational(%v, %d): want %q, got %q", r, c.p, c.want, got)
		}
	}
}
