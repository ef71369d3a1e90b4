package gf

import (
	"fmt"
	"strconv"
)

// Element is a value in a specific field: either the zero element or a
// power of the primitive element. Elements are immutable; every operation
// returns a new value. The Field reference is shared, never copied.
type Element struct {
	field *Field
	exp   int
	zero  bool
}

// NewElement builds the field of the given order from the catalog and
// returns a^exp in it. Callers performing many operations should build
// the Field once and use its element factories instead, since the table
// generation is the expensive step.
func NewElement(exp int, order int) (Element, error) {
	f, err := NewField(order)
	if err != nil {
		return Element{}, err
	}
	return f.Element(exp), nil
}

// Field returns the field the element belongs to.
func (e Element) Field() *Field { return e.field }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.zero }

// IsOne reports whether e is the multiplicative identity a^0.
func (e Element) IsOne() bool { return !e.zero && e.exp == 0 }

// Exponent returns the discrete log of e and true, or 0 and false for the
// zero element.
func (e Element) Exponent() (int, bool) {
	if e.zero {
		return 0, false
	}
	return e.exp, true
}

// PolyValue returns the polynomial-basis representation of e as a
// coefficient bitmask (bit i = coefficient of x^i). Zero maps to 0.
func (e Element) PolyValue() int {
	if e.zero {
		return 0
	}
	return e.field.powToPoly[e.exp]
}

// Equal reports whether e and b represent the same value in fields of the
// same order.
func (e Element) Equal(b Element) bool {
	if e.field.q != b.field.q {
		return false
	}
	if e.zero || b.zero {
		return e.zero == b.zero
	}
	return e.exp == b.exp
}

func (e Element) checkField(b Element) error {
	if e.field.q != b.field.q {
		return fmt.Errorf("%w: GF(%d) and GF(%d)", ErrFieldMismatch, e.field.q, b.field.q)
	}
	return nil
}

// add is Add without the field check, for operands known to share a field.
func (e Element) add(b Element) Element {
	v := e.PolyValue() ^ b.PolyValue()
	if v == 0 {
		return e.field.Zero()
	}
	return Element{field: e.field, exp: e.field.polyToPow[v]}
}

// Add returns e + b. Both operands are converted to the polynomial
// representation, added coefficient-wise mod 2 (XOR), and converted back.
// Fails with ErrFieldMismatch if the operands' field orders differ.
func (e Element) Add(b Element) (Element, error) {
	if err := e.checkField(b); err != nil {
		return Element{}, err
	}
	return e.add(b), nil
}

// Sub returns e - b. The field has characteristic 2, so subtraction is
// the same operation as addition.
func (e Element) Sub(b Element) (Element, error) {
	return e.Add(b)
}

// Mul returns e * b. Fails with ErrFieldMismatch if the operands' field
// orders differ.
func (e Element) Mul(b Element) (Element, error) {
	if err := e.checkField(b); err != nil {
		return Element{}, err
	}
	if e.zero || b.zero {
		return e.field.Zero(), nil
	}
	return e.field.Element(e.exp + b.exp), nil
}

// Div returns e / b. Fails with ErrDivisionByZero if b is zero and with
// ErrFieldMismatch if the operands' field orders differ.
func (e Element) Div(b Element) (Element, error) {
	if err := e.checkField(b); err != nil {
		return Element{}, err
	}
	if b.zero {
		return Element{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, e, b)
	}
	if e.zero {
		return e.field.Zero(), nil
	}
	return e.field.Element(e.exp - b.exp), nil
}

// DivExp returns e / a^n for a raw integer exponent n. The divisor is a
// power of the primitive element and therefore never zero.
func (e Element) DivExp(n int) Element {
	if e.zero {
		return e
	}
	return e.field.Element(e.exp - n)
}

// Pow returns e raised to the integer power k. Zero raised to any power
// is zero. Negative k is reduced modulo q-1, so Pow(-1) is the
// multiplicative inverse of a nonzero element.
func (e Element) Pow(k int) Element {
	if e.zero {
		return e
	}
	return e.field.Element(e.exp * k)
}

// Vec returns the m-bit coefficient vector of e, most significant
// coefficient first. The zero element yields the all-zero vector.
func (e Element) Vec() []int {
	v := e.PolyValue()
	m := e.field.m
	bits := make([]int, m)
	for i := 0; i < m; i++ {
		bits[i] = (v >> (m - 1 - i)) & 1
	}
	return bits
}

// String returns the stable display form: "0" for zero, "1" for a^0, and
// "a^n" otherwise.
func (e Element) String() string {
	switch {
	case e.zero:
		return "0"
	case e.exp == 0:
		return "1"
	default:
		return "a^" + strconv.Itoa(e.exp)
	}
}

// InField returns the display form suffixed with the field order, such as
// "a^3 GF(16)".
func (e Element) InField() string {
	return e.String() + " GF(" + strconv.Itoa(e.field.q) + ")"
}
