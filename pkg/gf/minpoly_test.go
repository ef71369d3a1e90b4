package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjugates(t *testing.T) {
	f16, err := NewField(16)
	require.NoError(t, err)

	tests := []struct {
		name string
		e    Element
		want []int
	}{
		{name: "primitive element", e: f16.Alpha(), want: []int{1, 2, 4, 8}},
		{name: "a^3", e: f16.Element(3), want: []int{3, 6, 12, 9}},
		{name: "a^5 short orbit", e: f16.Element(5), want: []int{5, 10}},
		{name: "one", e: f16.One(), want: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orbit := tt.e.Conjugates()
			require.Len(t, orbit, len(tt.want))
			for i, e := range orbit {
				exp, ok := e.Exponent()
				require.True(t, ok)
				assert.Equal(t, tt.want[i], exp)
			}
			assert.Zero(t, f16.M()%len(orbit), "orbit length must divide m")
		})
	}

	t.Run("zero", func(t *testing.T) {
		orbit := f16.Zero().Conjugates()
		require.Len(t, orbit, 1)
		assert.True(t, orbit[0].IsZero())
	})
}

func TestMinPolyFixedCases(t *testing.T) {
	f, err := NewField(16)
	require.NoError(t, err)

	mp, err := f.Zero().MinPoly()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, mp, "minimal polynomial of 0 is x")

	mp, err = f.One().MinPoly()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, mp, "minimal polynomial of 1 is x+1")

	pos, err := f.Zero().MinPolyPositions()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, pos)

	pos, err = f.One().MinPolyPositions()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, pos)
}

func TestMinPolyGF8(t *testing.T) {
	f, err := NewField(8)
	require.NoError(t, err)

	// a is a root of the defining polynomial x^3 + x + 1 itself.
	mp, err := f.Alpha().MinPoly()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 1}, mp)

	// a^3 belongs to the reciprocal polynomial x^3 + x^2 + 1.
	mp, err = f.Element(3).MinPoly()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 1}, mp)
}

func TestMinPolyGF16(t *testing.T) {
	f, err := NewField(16)
	require.NoError(t, err)

	// Appendix B of Lin and Costello, GF(2^4).
	tests := []struct {
		power     int
		positions []int
	}{
		{power: 1, positions: []int{0, 1, 4}},
		{power: 3, positions: []int{0, 1, 2, 3, 4}},
		{power: 5, positions: []int{0, 1, 2}},
		{power: 7, positions: []int{0, 3, 4}},
	}

	for _, tt := range tests {
		pos, err := f.Element(tt.power).MinPolyPositions()
		require.NoError(t, err)
		assert.Equal(t, tt.positions, pos, "minimal polynomial of a^%d", tt.power)
	}
}

func TestMinPolyRootProperty(t *testing.T) {
	for _, order := range []int{8, 16, 32, 64} {
		f, err := NewField(order)
		require.NoError(t, err)

		for n := 0; n < order-1; n++ {
			e := f.Element(n)
			coeffs, err := e.MinPoly()
			require.NoError(t, err)
			assert.True(t, e.isRootOf(coeffs), "GF(%d): %s must be a root of its minimal polynomial", order, e)
			assert.Len(t, coeffs, len(e.Conjugates())+1,
				"GF(%d): degree must equal the conjugate orbit length of %s", order, e)
		}
	}
}

func TestMinPolySharedAcrossOrbit(t *testing.T) {
	f, err := NewField(64)
	require.NoError(t, err)

	e := f.Element(5)
	want, err := e.MinPoly()
	require.NoError(t, err)
	for _, c := range e.Conjugates() {
		mp, err := c.MinPoly()
		require.NoError(t, err)
		assert.Equal(t, want, mp, "conjugate %s must share the minimal polynomial of %s", c, e)
	}
}

func TestMinPolyTableGF8(t *testing.T) {
	f, err := NewField(8)
	require.NoError(t, err)

	entries, err := f.MinPolyTable()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Power)
	assert.Equal(t, []int{0, 1, 3}, entries[0].Positions)
	assert.Equal(t, 3, entries[0].OrbitLen)

	assert.Equal(t, 3, entries[1].Power)
	assert.Equal(t, []int{0, 2, 3}, entries[1].Positions)
	assert.Equal(t, 3, entries[1].OrbitLen)
}

func TestMinPolyTableGF16(t *testing.T) {
	f, err := NewField(16)
	require.NoError(t, err)

	entries, err := f.MinPolyTable()
	require.NoError(t, err)
	require.Len(t, entries, 4)

	wantPowers := []int{1, 3, 5, 7}
	wantPositions := [][]int{
		{0, 1, 4},
		{0, 1, 2, 3, 4},
		{0, 1, 2},
		{0, 3, 4},
	}
	sumDeg := 0
	for i, entry := range entries {
		assert.Equal(t, wantPowers[i], entry.Power)
		assert.Equal(t, wantPositions[i], entry.Positions)
		assert.Equal(t, len(entry.Coeffs)-1, entry.OrbitLen)
		sumDeg += entry.OrbitLen
	}
	assert.GreaterOrEqual(t, sumDeg, f.Order()-2, "entries must cover every element beyond 0 and 1")
}
