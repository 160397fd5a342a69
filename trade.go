package fraccalc

import (
	"math/big"
	"strconv"
)

// RoundToStep rounds r to the nearest multiple of 1/step, with ties rounded
// away from zero. For example, with step 16, 1/32 rounds to 1/16 and -3/32
// rounds to -1/8. The result is a SettingError if step is not positive.
//
// The quotient r×step is computed exactly, so ties are detected exactly
// rather than within a floating-point tolerance.
func RoundToStep(r Rational, step int64) (Rational, error) {
	if step < 1 {
		return Rational{}, &SettingError{Name: "TradeStep", Value: strconv.FormatInt(step, 10)}
	}
	q := new(big.Int).Mul(r.num(), big.NewInt(step))
	neg := q.Sign() < 0
	q.Abs(q)
	var rem big.Int
	q.QuoRem(q, r.den(), &rem)
	if rem.Lsh(&rem, 1).Cmp(r.den()) >= 0 {
		q.Add(q, bigOne)
	}
	if neg {
		q.Neg(q)
	}
	return reduce(q, big.NewInt(step)), nil
}
