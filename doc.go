// Package fraccalc implements an exact-arithmetic calculator for fractions.
//
// Expressions are written the way you would on a shop floor: "1 3/8 + 5/16"
// adds a mixed number to a fraction, "2 × 3/4" and "2 * 3/4" are the same
// multiplication, and "50%" is one half. Numbers stay exact rationals for as
// long as every step is exact. Once a step is irrational, like sqrt(2) or
// anything involving π, that part of the computation continues in float64.
//
// Operator precedence, from loosest to tightest, is + and -, then × and ÷,
// then postfix %, then ^ (right-associative), then unary minus. Note that
// this makes "-3^2" equal to 9, not -9.
//
// Results can be rendered as decimals, as mixed numbers, as the closest
// fraction under a maximum denominator, or rounded to a "trade" step such as
// the nearest sixteenth.
package fraccalc
