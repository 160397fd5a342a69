package fraccalc

// Memory is a calculator memory register holding an exact rational. The zero
// value is a cleared register. A Memory is not safe for concurrent use.
type Memory struct {
	r Rational
}

// Add adds r to the register.
func (m *Memory) Add(r Rational) {
	m.r = m.r.Add(r)
}

// Sub subtracts r from the register.
func (m *Memory) Sub(r Rational) {
	m.r = m.r.Sub(r)
}

// AddValue adds a value to the register. Inexact values are converted with
// NumberToRational first.
func (m *Memory) AddValue(v Value) error {
	r, err := v.ToRational()
	if err != nil {
		return err
	}
	m.Add(r)
	return nil
}

// SubValue subtracts a value from the register. Inexact values are converted
// with NumberToRational first.
func (m *Memory) SubValue(v Value) error {
	r, err := v.ToRational()
	if err != nil {
		return err
	}
	m.Sub(r)
	return nil
}

// Recall returns the register's contents as a mixed number, suitable for
// inserting into an expression.
func (m *Memory) Recall() string {
	return MixedString(m.r)
}

// Value returns the register's contents.
func (m *Memory) Value() Rational {
	return m.r
}

// Clear resets the register to zero.
func (m *Memory) Clear() {
	m.r = Rational{}
}
