package fraccalc

import (
	"math"
	"math/big"
)

// MaxExactBits is the largest numerator or denominator size, in bits, that
// an exact power may produce. Larger powers fail with ErrOverflow.
const MaxExactBits = 1 << 20

// Rational is an exact fraction in lowest terms. The denominator is always
// positive, so the sign is carried by the numerator. The zero value is 0.
//
// Rationals are immutable. Every operation returns a new value, and values
// may be copied and shared freely.
type Rational struct {
	// n and d are never modified once a Rational holds them. A nil n means 0
	// and a nil d means 1, so that the zero value is valid.
	n, d *big.Int
}

var (
	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

// NewRational creates the fraction n/d in lowest terms. The result is
// ErrDivideByZero if d is zero.
func NewRational(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrDivideByZero
	}
	return reduce(big.NewInt(n), big.NewInt(d)), nil
}

// RationalOf creates the fraction n/d in lowest terms. Neither n nor d is
// retained. The result is ErrDivideByZero if d is zero.
func RationalOf(n, d *big.Int) (Rational, error) {
	if d.Sign() == 0 {
		return Rational{}, ErrDivideByZero
	}
	return reduce(new(big.Int).Set(n), new(big.Int).Set(d)), nil
}

// Int creates the integer n as a Rational.
func Int(n int64) Rational {
	return Rational{n: big.NewInt(n), d: bigOne}
}

// reduce normalizes n/d in place and wraps the result. d must be nonzero.
// gcd(0, d) is |d|, so zero reduces to 0/1.
func reduce(n, d *big.Int) Rational {
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	var g big.Int
	g.GCD(nil, nil, n, d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, &g)
		d.Quo(d, &g)
	}
	return Rational{n: n, d: d}
}

func (r Rational) num() *big.Int {
	if r.n == nil {
		return bigZero
	}
	return r.n
}

func (r Rational) den() *big.Int {
	if r.d == nil {
		return bigOne
	}
	return r.d
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.num())
}

// Denom returns a copy of the denominator, which is always positive.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.den())
}

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int {
	return r.num().Sign()
}

// IsInt reports whether the denominator of r is 1.
func (r Rational) IsInt() bool {
	return r.den().Cmp(bigOne) == 0
}

// Cmp compares r and s, returning -1, 0, or 1.
func (r Rational) Cmp(s Rational) int {
	return r.Rat().Cmp(s.Rat())
}

// Equal reports whether r and s are the same number.
func (r Rational) Equal(s Rational) bool {
	return r.num().Cmp(s.num()) == 0 && r.den().Cmp(s.den()) == 0
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{n: new(big.Int).Neg(r.num()), d: r.den()}
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	n := new(big.Int).Mul(r.num(), s.den())
	n.Add(n, new(big.Int).Mul(s.num(), r.den()))
	return reduce(n, new(big.Int).Mul(r.den(), s.den()))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	n := new(big.Int).Mul(r.num(), s.den())
	n.Sub(n, new(big.Int).Mul(s.num(), r.den()))
	return reduce(n, new(big.Int).Mul(r.den(), s.den()))
}

// Mul returns r × s.
func (r Rational) Mul(s Rational) Rational {
	n := new(big.Int).Mul(r.num(), s.num())
	return reduce(n, new(big.Int).Mul(r.den(), s.den()))
}

// Quo returns r ÷ s. The result is ErrDivideByZero if s is zero.
func (r Rational) Quo(s Rational) (Rational, error) {
	if s.Sign() == 0 {
		return Rational{}, ErrDivideByZero
	}
	n := new(big.Int).Mul(r.num(), s.den())
	return reduce(n, new(big.Int).Mul(r.den(), s.num())), nil
}

// Pow returns r^e. The exponent must be an integer, otherwise the result is
// ErrInvalidExponent. A negative exponent gives the reciprocal of the positive
// power, so 0 to a negative power is ErrDivideByZero. Any number to the power
// 0 is 1. Results larger than MaxExactBits are ErrOverflow.
func (r Rational) Pow(e Rational) (Rational, error) {
	if !e.IsInt() {
		return Rational{}, ErrInvalidExponent
	}
	k := e.num()
	switch {
	case k.Sign() == 0:
		return Int(1), nil
	case r.Sign() == 0:
		if k.Sign() < 0 {
			return Rational{}, ErrDivideByZero
		}
		return Rational{}, nil
	case r.IsInt() && r.num().CmpAbs(bigOne) == 0:
		// ±1 to any power is ±1 depending on parity, however large.
		if r.Sign() < 0 && k.Bit(0) == 1 {
			return Int(-1), nil
		}
		return Int(1), nil
	}
	bits := r.num().BitLen()
	if d := r.den().BitLen(); d > bits {
		bits = d
	}
	if !k.IsInt64() || k.CmpAbs(big.NewInt(MaxExactBits)) > 0 {
		return Rational{}, ErrOverflow
	}
	m := new(big.Int).Abs(k)
	// Each part of the base is below 2^bits, so each part of its power is
	// below 2^(bits*|k|).
	if uint64(bits)*m.Uint64() > MaxExactBits {
		return Rational{}, ErrOverflow
	}
	n := new(big.Int).Exp(r.num(), m, nil)
	d := new(big.Int).Exp(r.den(), m, nil)
	if k.Sign() < 0 {
		n, d = d, n
	}
	return reduce(n, d), nil
}

// Rat returns r as a new big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac(r.num(), r.den())
}

// Float64 returns the float64 value nearest r. If r is outside the range of
// float64, the result is ErrOverflow.
func (r Rational) Float64() (float64, error) {
	f, _ := r.Rat().Float64()
	if math.IsInf(f, 0) {
		return 0, ErrOverflow
	}
	return f, nil
}

// String formats r as "n/d", or just "n" if r is an integer.
func (r Rational) String() string {
	if r.IsInt() {
		return r.num().String()
	}
	return r.num().String() + "/" + r.den().String()
}
