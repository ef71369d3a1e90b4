// Package validation parses and validates the textual inputs accepted by
// the CLI: field orders, primitive polynomial exponent lists, element
// literals, and integer powers.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmshea/coding/pkg/gf"
)

var (
	intPattern     = regexp.MustCompile(`^-?\d+$`)
	elementPattern = regexp.MustCompile(`^a(?:\^(-?\d+))?$`)
)

// ParseFieldOrder parses a field order such as "16".
func ParseFieldOrder(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("field order cannot be empty")
	}

	order, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid field order %q: %w", input, err)
	}
	if order < 2 {
		return 0, fmt.Errorf("field order must be at least 2, got %d", order)
	}

	return order, nil
}

// ParsePolynomial parses a primitive polynomial given as a comma-separated
// list of exponents with nonzero coefficient, e.g. "0,1,4" for x^4+x+1.
func ParsePolynomial(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("polynomial cannot be empty")
	}

	parts := strings.Split(input, ",")
	exponents := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if !intPattern.MatchString(part) {
			return nil, fmt.Errorf("%w: %q", gf.ErrInvalidExponent, part)
		}
		e, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid exponent %q: %w", part, err)
		}
		exponents = append(exponents, e)
	}

	return exponents, nil
}

// ParseElement parses an element literal in the stable display form: "0"
// for the zero element, "1" for a^0, and "a^n" (or bare "a") otherwise.
func ParseElement(input string, field *gf.Field) (gf.Element, error) {
	input = strings.TrimSpace(input)

	switch input {
	case "":
		return gf.Element{}, fmt.Errorf("element cannot be empty")
	case "0":
		return field.Zero(), nil
	case "1":
		return field.One(), nil
	}

	match := elementPattern.FindStringSubmatch(input)
	if match == nil {
		return gf.Element{}, fmt.Errorf("invalid element %q: want \"0\", \"1\", or \"a^n\"", input)
	}
	if match[1] == "" {
		return field.Alpha(), nil
	}

	exp, err := strconv.Atoi(match[1])
	if err != nil {
		return gf.Element{}, fmt.Errorf("%w: %q", gf.ErrInvalidExponent, match[1])
	}

	return field.Element(exp), nil
}

// ParsePower parses an integer power for exponentiation and division by a
// raw exponent.
func ParsePower(input string) (int, error) {
	input = strings.TrimSpace(input)
	if !intPattern.MatchString(input) {
		return 0, fmt.Errorf("%w: %q", gf.ErrInvalidExponent, input)
	}

	k, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", gf.ErrInvalidExponent, input)
	}

	return k, nil
}
