package fraccalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// decimalTol is the tolerance for recognizing a float as a short decimal.
	decimalTol = 1e-12
	// maxDecimalPlaces is the most decimal places NumberToRational tries
	// before falling back to the closest fraction.
	maxDecimalPlaces = 10
	// FallbackMaxDenom is the largest denominator NumberToRational uses for
	// floats that are not short decimals.
	FallbackMaxDenom = 1000000
	// bestFitIters bounds the continued fraction expansion in BestFit.
	bestFitIters = 64
)

// NumberToRational converts a float to a rational. Integers convert exactly.
// Otherwise, the float is matched against decimals of up to ten places, e.g.
// 0.1 becomes 1/10 rather than the binary fraction nearest 0.1. Failing that,
// the result is the closest fraction with denominator at most FallbackMaxDenom.
func NumberToRational(x float64) (Rational, error) {
	if err := checkFloat("rational", x); err != nil {
		return Rational{}, err
	}
	if x == math.Trunc(x) {
		return Rational{n: floatInt(x), d: bigOne}, nil
	}
	ax := math.Abs(x)
	p := 1.0
	for k := 1; k <= maxDecimalPlaces; k++ {
		p *= 10
		m := math.Round(ax * p)
		if math.Abs(m/p-ax) <= decimalTol {
			return reduce(floatInt(math.Copysign(m, x)), floatInt(p)), nil
		}
	}
	return BestFit(x, FallbackMaxDenom, decimalTol)
}

// BestFit finds the fraction closest to x with denominator at most maxDen,
// by expanding x as a continued fraction. The expansion stops at the first
// convergent within tol of x. If the next convergent's denominator would
// exceed maxDen, the result is the closer of the previous convergent and the
// largest semiconvergent that stays within it instead.
func BestFit(x float64, maxDen int64, tol float64) (Rational, error) {
	if err := checkFloat("fraction", x); err != nil {
		return Rational{}, err
	}
	if maxDen < 1 {
		return Rational{}, &SettingError{Name: "MaxDenom", Value: strconv.FormatInt(maxDen, 10)}
	}
	if x == 0 {
		return Rational{}, nil
	}
	neg := x < 0
	x = math.Abs(x)
	if near := math.Round(x); math.Abs(near-x) <= tol {
		return signed(Rational{n: floatInt(near), d: bigOne}, neg), nil
	}

	var (
		// h1/k1 is the latest convergent and h0/k0 the one before.
		h0, h1 = big.NewInt(0), big.NewInt(1)
		k0, k1 = big.NewInt(1), big.NewInt(0)
		limit  = big.NewInt(maxDen)
		frac   = x
	)
	for i := 0; i < bestFitIters; i++ {
		a := math.Floor(frac)
		ab := floatInt(a)
		h2 := new(big.Int).Mul(ab, h1)
		h2.Add(h2, h0)
		k2 := new(big.Int).Mul(ab, k1)
		k2.Add(k2, k0)

		if k2.Cmp(limit) > 0 {
			t := new(big.Int).Sub(limit, k0)
			t.Quo(t, k1)
			h := new(big.Int).Mul(t, h1)
			h.Add(h, h0)
			k := new(big.Int).Mul(t, k1)
			k.Add(k, k0)
			return signed(closer(x, reduce(h, k), reduce(h1, k1)), neg), nil
		}
		approx, _ := new(big.Rat).SetFrac(h2, k2).Float64()
		if math.Abs(approx-x) <= tol {
			return signed(reduce(h2, k2), neg), nil
		}

		h0, h1 = h1, h2
		k0, k1 = k1, k2
		rem := frac - a
		if rem == 0 {
			break
		}
		frac = 1 / rem
		if math.IsInf(frac, 0) {
			break
		}
	}
	return signed(reduce(h1, k1), neg), nil
}

// closer returns whichever of semi and conv is nearer to x, preferring conv,
// which has the smaller denominator, on ties. A semiconvergent with a small
// multiplier can be farther from x than the previous convergent.
func closer(x float64, semi, conv Rational) Rational {
	xr := new(big.Rat).SetFloat64(x)
	ds := new(big.Rat).Sub(semi.Rat(), xr)
	dc := new(big.Rat).Sub(conv.Rat(), xr)
	if ds.Abs(ds).Cmp(dc.Abs(dc)) < 0 {
		return semi
	}
	return conv
}

func signed(r Rational, neg bool) Rational {
	if neg {
		return r.Neg()
	}
	return r
}

// floatInt converts an integral float to a big.Int.
func floatInt(x float64) *big.Int {
	n, _ := new(big.Float).SetFloat64(x).Int(nil)
	return n
}

// MixedString formats r as a mixed number, e.g. "-1 3/8". The fractional part
// is omitted if it is zero, and the whole part is omitted if it is zero.
func MixedString(r Rational) string {
	var whole, rem big.Int
	whole.QuoRem(new(big.Int).Abs(r.num()), r.den(), &rem)
	var b strings.Builder
	if r.Sign() < 0 {
		b.WriteByte('-')
	}
	if rem.Sign() == 0 {
		b.WriteString(whole.String())
		return b.String()
	}
	if whole.Sign() != 0 {
		b.WriteString(whole.String())
		b.WriteByte(' ')
	}
	b.WriteString(rem.String())
	b.WriteByte('/')
	b.WriteString(r.den().String())
	return b.String()
}

// ParseMixed parses a single optionally signed number in any form the
// tokenizer accepts as a number, including mixed numbers written with a space
// or a hyphen. It accepts every string MixedString produces.
func ParseMixed(s string) (Rational, error) {
	toks, err := tokenize(s, true)
	if err != nil {
		return Rational{}, err
	}
	neg := false
	if len(toks) == 2 && toks[0].kind == tokenOp && (toks[0].text == "-" || toks[0].text == "+") {
		neg = toks[0].text == "-"
		toks = toks[1:]
	}
	if len(toks) != 1 || toks[0].kind != tokenNum {
		return Rational{}, &NumberError{Text: s}
	}
	r, err := parseLiteral(toks[0].text)
	if err != nil {
		return Rational{}, err
	}
	return signed(r, neg), nil
}

// parseLiteral parses the text of a number token: an integer, a decimal, a
// simple fraction "n/d", or a mixed number "w n/d". Decimals convert exactly.
func parseLiteral(text string) (Rational, error) {
	if !strings.Contains(text, "/") {
		s := text
		if strings.HasPrefix(s, ".") {
			s = "0" + s
		}
		if strings.HasSuffix(s, ".") {
			s += "0"
		}
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return Rational{}, &NumberError{Text: text}
		}
		return Rational{n: r.Num(), d: r.Denom()}, nil
	}
	whole := new(big.Int)
	frac := text
	if f := strings.Fields(text); len(f) == 2 {
		if _, ok := whole.SetString(f[0], 10); !ok {
			return Rational{}, &NumberError{Text: text}
		}
		frac = f[1]
	}
	i := strings.IndexByte(frac, '/')
	n, ok := new(big.Int).SetString(frac[:i], 10)
	if !ok {
		return Rational{}, &NumberError{Text: text}
	}
	d, ok := new(big.Int).SetString(frac[i+1:], 10)
	if !ok {
		return Rational{}, &NumberError{Text: text}
	}
	if d.Sign() == 0 {
		return Rational{}, ErrDivideByZero
	}
	n.Add(n, whole.Mul(whole, d))
	return reduce(n, d), nil
}

// FormatDecimal formats x with precision decimal places, then strips trailing
// zeros and a trailing decimal point. Negative zero formats as "0".
func FormatDecimal(x float64, precision int) string {
	return trimDecimal(strconv.FormatFloat(x, 'f', precision, 64))
}

// FormatRational formats r exactly rounded to precision decimal places, with
// halves rounded away from zero, then strips trailing zeros like
// FormatDecimal.
func FormatRational(r Rational, precision int) string {
	return trimDecimal(r.Rat().FloatString(precision))
}

func trimDecimal(s string) string {
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
