package numwords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Number is a non-negative decimal value
type Number struct {
	Integer uint64
	// Digits holds the ASCII integer digits when the value does not fit in
	// Integer. Such numbers are read digit by digit.
	Digits string
	// Fraction holds the ASCII digits after the separator, empty for integers
	Fraction string
}

// Int returns an integral Number
func Int(n uint64) Number {
	return Number{Integer: n}
}

func (n Number) String() string {
	intPart := n.Digits
	if intPart == "" {
		intPart = strconv.FormatUint(n.Integer, 10)
	}
	if n.Fraction == "" {
		return intPart
	}
	return intPart + "." + n.Fraction
}

// ParseNumeral parses digits of any script with at most one '.' or ','
// separator. The whole string must be a numeral.
func ParseNumeral(s string) (Number, error) {
	intPart, fracPart := s, ""
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if fracPart == "" {
			return Number{}, fmt.Errorf("%q: %w", s, ErrNotANumber)
		}
	}

	intDigits, ok := asciiDigits(intPart)
	if !ok {
		return Number{}, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	fracDigits, ok := asciiDigits(fracPart)
	if !ok && fracPart != "" {
		return Number{}, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}

	v, err := strconv.ParseUint(intDigits, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return Number{Digits: intDigits, Fraction: fracDigits}, nil
	}
	if err != nil {
		return Number{}, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return Number{Integer: v, Fraction: fracDigits}, nil
}

// DigitValue returns the value of a decimal digit of any script
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	// Decimal digits are encoded in contiguous runs starting at zero.
	start := r
	for start > 0 && unicode.Is(unicode.Nd, start-1) {
		start--
	}
	return int(r-start) % 10, true
}

func asciiDigits(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	var b strings.Builder
	b.Grow(utf8.RuneCountInString(s))
	for _, r := range s {
		d, ok := DigitValue(r)
		if !ok {
			return "", false
		}
		b.WriteByte(byte('0' + d))
	}
	return b.String(), true
}
