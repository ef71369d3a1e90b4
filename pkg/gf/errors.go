package gf

import "errors"

var (
	// ErrUnsupportedOrder is returned when no default primitive polynomial
	// is known for the requested field order.
	ErrUnsupportedOrder = errors.New("gf: unsupported field order")

	// ErrInvalidPoly is returned for a primitive polynomial specification
	// missing its constant or leading term.
	ErrInvalidPoly = errors.New("gf: invalid primitive polynomial")

	// ErrFieldMismatch is returned when a binary operation combines
	// elements from fields of different order.
	ErrFieldMismatch = errors.New("gf: elements belong to fields of different order")

	// ErrDivisionByZero is returned when the divisor is the zero element.
	ErrDivisionByZero = errors.New("gf: division by zero")

	// ErrInvalidExponent is returned by input parsing when an exponent or
	// power is not an integer.
	ErrInvalidExponent = errors.New("gf: exponent must be an integer")

	// ErrNoRoot is returned when the minimal polynomial search space is
	// exhausted without finding a root. This cannot happen for a field
	// built from a genuinely primitive polynomial.
	ErrNoRoot = errors.New("gf: minimal polynomial search exhausted without a root")
)
