package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmshea/coding/pkg/gf"
)

func TestParseFieldOrder(t *testing.T) {
	order, err := ParseFieldOrder(" 16 ")
	require.NoError(t, err)
	assert.Equal(t, 16, order)

	for _, input := range []string{"", "abc", "1", "-8"} {
		_, err := ParseFieldOrder(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParsePolynomial(t *testing.T) {
	exps, err := ParsePolynomial("0, 1, 4")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, exps)

	_, err = ParsePolynomial("")
	assert.Error(t, err)

	_, err = ParsePolynomial("0,x,4")
	assert.ErrorIs(t, err, gf.ErrInvalidExponent)
}

func TestParseElement(t *testing.T) {
	f, err := gf.NewField(16)
	require.NoError(t, err)

	tests := []struct {
		input string
		want  gf.Element
	}{
		{input: "0", want: f.Zero()},
		{input: "1", want: f.One()},
		{input: "a", want: f.Alpha()},
		{input: "a^7", want: f.Element(7)},
		{input: "a^15", want: f.One()},
		{input: "a^-1", want: f.Element(14)},
	}

	for _, tt := range tests {
		got, err := ParseElement(tt.input, f)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, got.Equal(tt.want), "input %q", tt.input)
	}

	for _, input := range []string{"", "b^2", "a^", "a^x", "2a"} {
		_, err := ParseElement(input, f)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParsePower(t *testing.T) {
	k, err := ParsePower("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, k)

	for _, input := range []string{"", "x", "2.5"} {
		_, err := ParsePower(input)
		assert.ErrorIs(t, err, gf.ErrInvalidExponent, "input %q", input)
	}
}
