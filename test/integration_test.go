package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmshea/coding/internal/validation"
	"github.com/jmshea/coding/pkg/gf"
)

// evaluate computes the polynomial given by coeffs (most significant
// first) at e through the public arithmetic interface.
func evaluate(t *testing.T, coeffs []int, e gf.Element) gf.Element {
	t.Helper()

	deg := len(coeffs) - 1
	acc := e.Field().Zero()
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		var err error
		acc, err = acc.Add(e.Pow(deg - i))
		require.NoError(t, err)
	}
	return acc
}

func TestFullWorkflow(t *testing.T) {
	f, err := gf.NewField(16)
	require.NoError(t, err)

	// parse, combine, and display elements end to end
	a, err := validation.ParseElement("a^3", f)
	require.NoError(t, err)
	b, err := validation.ParseElement("a^7", f)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	prod, err := a.Mul(b)
	require.NoError(t, err)
	quot, err := prod.Div(b)
	require.NoError(t, err)
	assert.True(t, quot.Equal(a))

	roundTrip, err := validation.ParseElement(sum.String(), f)
	require.NoError(t, err)
	assert.True(t, roundTrip.Equal(sum), "display form must parse back to the same element")

	// the minimal polynomial of a^3 vanishes at every conjugate
	coeffs, err := a.MinPoly()
	require.NoError(t, err)
	for _, c := range a.Conjugates() {
		assert.True(t, evaluate(t, coeffs, c).IsZero())
	}
}

func TestExplicitPolynomialMatchesCatalog(t *testing.T) {
	fromOrder, err := gf.NewField(16)
	require.NoError(t, err)
	fromPoly, err := gf.NewFieldFromPoly([]int{0, 1, 4})
	require.NoError(t, err)

	require.Equal(t, fromOrder.Poly(), fromPoly.Poly())
	for n := 0; n < 15; n++ {
		assert.Equal(t, fromOrder.Element(n).Vec(), fromPoly.Element(n).Vec())
	}
}

func TestMinPolyTableGF64(t *testing.T) {
	f, err := gf.NewField(64)
	require.NoError(t, err)

	entries, err := f.MinPolyTable()
	require.NoError(t, err)

	// Appendix B of Lin and Costello, GF(2^6)
	wantPowers := []int{1, 3, 5, 7, 9, 11, 13, 15, 21, 23, 27, 31}
	require.Len(t, entries, len(wantPowers))

	sumDeg := 0
	for i, entry := range entries {
		assert.Equal(t, wantPowers[i], entry.Power)
		assert.Equal(t, len(entry.Coeffs)-1, entry.OrbitLen)
		assert.True(t, evaluate(t, entry.Coeffs, f.Element(entry.Power)).IsZero(),
			"a^%d must be a root of its table entry", entry.Power)
		sumDeg += entry.OrbitLen
	}
	assert.Equal(t, f.Order()-2, sumDeg)

	spotChecks := map[int][]int{
		1:  {0, 1, 6},
		7:  {0, 3, 6},
		9:  {0, 2, 3},
		21: {0, 1, 2},
		27: {0, 1, 3},
		31: {0, 5, 6},
	}
	for _, entry := range entries {
		if want, ok := spotChecks[entry.Power]; ok {
			assert.Equal(t, want, entry.Positions, "minimal polynomial of a^%d", entry.Power)
		}
	}
}

func TestSharedFieldAcrossElements(t *testing.T) {
	f, err := gf.NewField(256)
	require.NoError(t, err)

	// many elements share one table set; results stay consistent
	for n := 0; n < 255; n += 17 {
		e := f.Element(n)
		require.Same(t, f, e.Field())

		inv := e.Pow(-1)
		prod, err := e.Mul(inv)
		require.NoError(t, err)
		assert.True(t, prod.IsOne())
	}
}
