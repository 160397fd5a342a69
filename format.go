package fraccalc

// Rendered holds the strings a calculator shows for a value.
type Rendered struct {
	// Decimal is the value rounded to the settings' precision, with trailing
	// zeros removed.
	Decimal string
	// Fraction is the exact mixed number for an exact value, or the closest
	// mixed number with denominator at most MaxDenom for an inexact value in
	// fraction mode. Otherwise it is empty.
	Fraction string
	// Trade is the value rounded to the nearest 1/TradeStep as a mixed number,
	// or empty when trade mode is off.
	Trade string
	// TradeDecimal is Trade as a decimal.
	TradeDecimal string
	// Input is the rendering to reuse as input to a later expression: Trade
	// in trade mode, else Fraction in fraction mode if there is one, else
	// Decimal.
	Input string
}

// FormatValue renders v under s. The result depends only on v and s.
func FormatValue(v Value, s Settings) (Rendered, error) {
	if err := s.Validate(); err != nil {
		return Rendered{}, err
	}
	var out Rendered
	switch v.kind {
	case ValueRational:
		out.Decimal = FormatRational(v.r, s.Precision)
		out.Fraction = MixedString(v.r)
	case ValueFloat:
		out.Decimal = FormatDecimal(v.x, s.Precision)
		if s.FractionMode {
			r, err := BestFit(v.x, s.MaxDenom, decimalTol)
			if err != nil {
				return Rendered{}, err
			}
			out.Fraction = MixedString(r)
		}
	default:
		panic("fraccalc: invalid value kind " + v.kind.String())
	}
	if s.TradeMode {
		r, err := v.ToRational()
		if err != nil {
			return Rendered{}, err
		}
		r, err = RoundToStep(r, s.TradeStep)
		if err != nil {
			return Rendered{}, err
		}
		out.Trade = MixedString(r)
		out.TradeDecimal = FormatRational(r, s.Precision)
	}
	switch {
	case s.TradeMode:
		out.Input = out.Trade
	case s.FractionMode && out.Fraction != "":
		out.Input = out.Fraction
	default:
		out.Input = out.Decimal
	}
	return out, nil
}
