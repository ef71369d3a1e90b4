package gf

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Conjugates returns the Frobenius orbit of e: the sequence e, e^2, e^4,
// e^8, ... obtained by repeated squaring, ending just before the orbit
// returns to e. The orbit length divides m. The orbit of zero is {0}.
func (e Element) Conjugates() []Element {
	if e.zero {
		return []Element{e}
	}
	orbit := []Element{e}
	mod := e.field.q - 1
	for next := (2 * e.exp) % mod; next != e.exp; next = (2 * next) % mod {
		orbit = append(orbit, Element{field: e.field, exp: next})
	}
	return orbit
}

// MinPoly returns the coefficients, most significant first, of the
// minimal polynomial of e: the lowest-degree monic polynomial over GF(2)
// with e as a root. Its degree equals the conjugate-orbit length of e.
//
// The zero element's minimal polynomial is x and the one element's is
// x+1. For any other element the candidate is monic with constant term 1,
// and the interior coefficients are searched exhaustively in ascending
// numeric order of the bit pattern; the first candidate that evaluates to
// zero at e is returned. Fails with ErrNoRoot only if the field was built
// from a non-primitive polynomial.
func (e Element) MinPoly() ([]int, error) {
	if e.zero {
		return []int{1, 0}, nil
	}
	if e.exp == 0 {
		return []int{1, 1}, nil
	}

	deg := len(e.Conjugates())
	coeffs := make([]int, deg+1)
	for pattern := 0; pattern < 1<<(deg-1); pattern++ {
		coeffs[0] = 1
		coeffs[deg] = 1
		for i := 0; i < deg-1; i++ {
			coeffs[1+i] = (pattern >> (deg - 2 - i)) & 1
		}
		if e.isRootOf(coeffs) {
			return coeffs, nil
		}
	}

	return nil, fmt.Errorf("%w: %s in GF(%d)", ErrNoRoot, e, e.field.q)
}

// isRootOf evaluates the polynomial given by coeffs (most significant
// first) at e and reports whether the result is zero. The sum of
// coeff_i * e^(deg-i) is accumulated with field arithmetic.
func (e Element) isRootOf(coeffs []int) bool {
	deg := len(coeffs) - 1
	acc := e.field.Zero()
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		acc = acc.add(e.Pow(deg - i))
	}
	return acc.zero
}

// MinPolyPositions returns the minimal polynomial of e as the ascending
// positions of its nonzero coefficients, the form used in Appendix B of
// Lin and Costello. For example x^3+x+1 yields [0, 1, 3].
func (e Element) MinPolyPositions() ([]int, error) {
	coeffs, err := e.MinPoly()
	if err != nil {
		return nil, err
	}
	return coeffPositions(coeffs), nil
}

func coeffPositions(coeffs []int) []int {
	deg := len(coeffs) - 1
	positions := make([]int, 0, len(coeffs))
	for i := deg; i >= 0; i-- {
		if coeffs[i] != 0 {
			positions = append(positions, deg-i)
		}
	}
	return positions
}

// MinPolyEntry is one row of a field's minimal polynomial summary.
type MinPolyEntry struct {
	// Power is the lowest odd power of a covered by this polynomial.
	Power int
	// Coeffs is the coefficient vector, most significant first.
	Coeffs []int
	// Positions lists the nonzero coefficient positions, ascending.
	Positions []int
	// OrbitLen is the conjugate-orbit length, equal to the degree.
	OrbitLen int
}

// MinPolyTable returns the distinct minimal polynomials of the field's
// elements, walking the odd powers of a and skipping powers whose
// conjugate orbit is already covered by an earlier entry. Enumeration
// stops once the covered degrees sum to q-2, which accounts for every
// element beyond 0 and 1. This reproduces the layout of the minimal
// polynomial tables in Appendix B of Lin and Costello.
func (f *Field) MinPolyTable() ([]MinPolyEntry, error) {
	covered := bitset.New(uint(f.q - 1))
	var entries []MinPolyEntry
	sumDeg := 0

	for i := 1; i < f.q-2; i += 2 {
		e := f.Element(i)
		if covered.Test(uint(e.exp)) {
			continue
		}
		orbit := e.Conjugates()
		for _, c := range orbit {
			covered.Set(uint(c.exp))
		}

		coeffs, err := e.MinPoly()
		if err != nil {
			return nil, err
		}
		entries = append(entries, MinPolyEntry{
			Power:     i,
			Coeffs:    coeffs,
			Positions: coeffPositions(coeffs),
			OrbitLen:  len(orbit),
		})

		sumDeg += len(coeffs) - 1
		if sumDeg >= f.q-2 {
			break
		}
	}

	return entries, nil
}
