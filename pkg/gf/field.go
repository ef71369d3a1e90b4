// Package gf implements arithmetic over binary extension fields GF(2^m).
//
// A Field holds the antilog (power -> polynomial) and discrete log
// (polynomial -> power) tables for one field, generated once from a
// primitive polynomial. Elements are carried as powers of the primitive
// element a, so multiplication, division, and exponentiation reduce to
// modular arithmetic on exponents, while addition goes through the
// polynomial representation with a pair of table lookups.
//
// A Field is immutable after construction and safe to share across
// goroutines. Element values are small and freely copyable.
package gf

import "fmt"

// Default primitive polynomials by field order, from Appendix B of
// Lin and Costello.
var primitivePolys = map[int][]int{
	4:   {0, 1, 2},       // x^2 + x + 1
	8:   {0, 1, 3},       // x^3 + x + 1
	16:  {0, 1, 4},       // x^4 + x + 1
	32:  {0, 2, 5},       // x^5 + x^2 + 1
	64:  {0, 1, 6},       // x^6 + x + 1
	128: {0, 3, 7},       // x^7 + x^3 + 1
	256: {0, 2, 3, 4, 8}, // x^8 + x^4 + x^3 + x^2 + 1
}

// noPower marks the zero element in the log table; zero has no discrete log.
const noPower = -1

// maxDegree bounds the extension degree. Both lookup tables materialize
// all 2^m entries, so larger degrees are out of reach of this
// table-driven representation.
const maxDegree = 24

// Field represents one concrete field GF(2^m).
type Field struct {
	poly int // primitive polynomial bitmask, bit i = coefficient of x^i
	m    int // extension degree
	q    int // field order, 2^m

	powToPoly []int // exponent n -> polynomial bits of a^n, length q-1
	polyToPow []int // polynomial bits -> exponent, length q; index 0 holds noPower
}

// NewField builds the field of the given order using the default primitive
// polynomial from the built-in catalog.
func NewField(order int) (*Field, error) {
	exps, ok := primitivePolys[order]
	if !ok {
		return nil, fmt.Errorf("%w: no default primitive polynomial for order %d", ErrUnsupportedOrder, order)
	}
	return NewFieldFromPoly(exps)
}

// NewFieldFromPoly builds a field from an explicit primitive polynomial,
// given as the exponents with nonzero coefficient. The set must contain 0
// (constant term) and the top degree m. The polynomial is assumed to be
// irreducible and primitive over GF(2); this is not verified.
func NewFieldFromPoly(exponents []int) (*Field, error) {
	if len(exponents) == 0 {
		return nil, fmt.Errorf("%w: no coefficients given", ErrInvalidPoly)
	}

	poly := 0
	top := 0
	hasConstant := false
	for _, e := range exponents {
		if e < 0 {
			return nil, fmt.Errorf("%w: negative exponent %d", ErrInvalidPoly, e)
		}
		if e > maxDegree {
			return nil, fmt.Errorf("%w: degree %d exceeds the maximum %d", ErrInvalidPoly, e, maxDegree)
		}
		poly |= 1 << e
		if e > top {
			top = e
		}
		if e == 0 {
			hasConstant = true
		}
	}
	if !hasConstant {
		return nil, fmt.Errorf("%w: missing constant term", ErrInvalidPoly)
	}
	if top == 0 {
		return nil, fmt.Errorf("%w: missing leading term", ErrInvalidPoly)
	}

	m := top
	q := 1 << m
	f := &Field{
		poly:      poly,
		m:         m,
		q:         q,
		powToPoly: make([]int, q-1),
		polyToPow: make([]int, q),
	}
	f.polyToPow[0] = noPower

	// Walk the powers of a: multiply by x (shift left) each step and,
	// on overflow past degree m-1, reduce by the low bits of the
	// primitive polynomial. Coefficients are mod 2, so subtraction is XOR.
	reduction := poly & (q - 1)
	a := 1
	for n := 0; n < q-1; n++ {
		f.powToPoly[n] = a
		f.polyToPow[a] = n
		a <<= 1
		if a&q != 0 {
			a = (a & (q - 1)) ^ reduction
		}
	}

	return f, nil
}

// M returns the extension degree m.
func (f *Field) M() int { return f.m }

// Order returns the field order q = 2^m.
func (f *Field) Order() int { return f.q }

// Poly returns the primitive polynomial as a coefficient bitmask.
func (f *Field) Poly() int { return f.poly }

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{field: f, zero: true}
}

// One returns the multiplicative identity a^0.
func (f *Field) One() Element {
	return Element{field: f}
}

// Alpha returns the primitive element a.
func (f *Field) Alpha() Element {
	return Element{field: f, exp: 1}
}

// Element returns a^exp. The exponent may be any integer; it is reduced
// into [0, q-2].
func (f *Field) Element(exp int) Element {
	n := exp % (f.q - 1)
	if n < 0 {
		n += f.q - 1
	}
	return Element{field: f, exp: n}
}

// Elements returns all q-1 nonzero elements in exponent order.
func (f *Field) Elements() []Element {
	elts := make([]Element, f.q-1)
	for n := range elts {
		elts[n] = Element{field: f, exp: n}
	}
	return elts
}

// String returns a short description such as "GF(16)".
func (f *Field) String() string {
	return fmt.Sprintf("GF(%d)", f.q)
}
