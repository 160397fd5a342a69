package fraccalc

import (
	"strconv"
	"strings"
)

// AngleMode selects the unit of arguments to trigonometric functions.
type AngleMode int8

const (
	// Degrees measures angles in degrees.
	Degrees AngleMode = iota // DEG
	// Radians measures angles in radians.
	Radians // RAD
)

// ParseAngleMode parses "DEG" or "RAD", ignoring case. The long forms
// "degrees" and "radians" are accepted as well.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	default:
		return 0, &SettingError{Name: "Angle", Value: s}
	}
}

// MaxPrecision is the largest number of decimal places Settings allows.
const MaxPrecision = 100

// Settings holds options for evaluating and rendering expressions.
type Settings struct {
	// Angle is the unit for sin, cos, and tan.
	Angle AngleMode
	// FractionMode renders inexact results as the closest fraction with
	// denominator at most MaxDenom.
	FractionMode bool
	// MaxDenom is the largest denominator for FractionMode.
	MaxDenom int64
	// HyphenMixed reads "1-3/8" as the mixed number 1 3/8.
	HyphenMixed bool
	// TradeMode renders results rounded to the nearest 1/TradeStep.
	TradeMode bool
	// TradeStep is the denominator of the trade rounding step.
	TradeStep int64
	// Precision is the number of decimal places in decimal renderings.
	Precision int
}

// DefaultSettings returns the default settings: degrees, fraction mode off
// with sixteenths, hyphen mixed numbers off, trade mode off with sixteenths,
// and six decimal places.
func DefaultSettings() Settings {
	return Settings{
		Angle:     Degrees,
		MaxDenom:  16,
		TradeStep: 16,
		Precision: 6,
	}
}

// Validate checks that every setting is in range.
func (s Settings) Validate() error {
	switch {
	case s.Angle != Degrees && s.Angle != Radians:
		return &SettingError{Name: "Angle", Value: s.Angle.String()}
	case s.MaxDenom < 1:
		return &SettingError{Name: "MaxDenom", Value: strconv.FormatInt(s.MaxDenom, 10)}
	case s.TradeStep < 1:
		return &SettingError{Name: "TradeStep", Value: strconv.FormatInt(s.TradeStep, 10)}
	case s.Precision < 0 || s.Precision > MaxPrecision:
		return &SettingError{Name: "Precision", Value: strconv.Itoa(s.Precision)}
	}
	return nil
}
