package dimtable

import (
	"fmt"
	"regexp"
	"strconv"
)

var exponentRegexp = regexp.MustCompile(`^\s*\{\s*(-?\d+)\s*,\s*(-?\d+)\s*\}\s*$`)

// Exponent is the numerator/denominator exponent pair for one base dimension.
type Exponent struct {
	Num int `json:"num" yaml:"num"`
	Den int `json:"den" yaml:"den"`
}

// ParseExponent parses a single "{num,den}" cell. Whitespace is allowed
// around every token.
func ParseExponent(raw string) (Exponent, error) {
	m := exponentRegexp.FindStringSubmatch(raw)
	if m == nil {
		return Exponent{}, fmt.Errorf("expected '{num,den}', got %q", raw)
	}

	num, err := strconv.Atoi(m[1])
	if err != nil {
		return Exponent{}, fmt.Errorf("numerator %q: %w", m[1], err)
	}

	den, err := strconv.Atoi(m[2])
	if err != nil {
		return Exponent{}, fmt.Errorf("denominator %q: %w", m[2], err)
	}

	return Exponent{Num: num, Den: den}, nil
}

// Signature is the flattened exponent tuple of a row: the numerator and
// denominator of each base dimension, in column order. Two rows share a
// dimensionality exactly when their signatures are equal.
type Signature [SignatureLen]int

// Exponent returns the exponent pair of the given base dimension.
func (s Signature) Exponent(d BaseDimension) Exponent {
	return Exponent{Num: s[2*int(d)], Den: s[2*int(d)+1]}
}
