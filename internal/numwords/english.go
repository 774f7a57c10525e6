package numwords

import (
	"strings"
	"unicode"
)

var (
	enOnes = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	enTens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	enScales = []struct {
		value uint64
		name  string
	}{
		{1_000_000_000_000_000_000, "quintillion"},
		{1_000_000_000_000_000, "quadrillion"},
		{1_000_000_000_000, "trillion"},
		{1_000_000_000, "billion"},
		{1_000_000, "million"},
		{1_000, "thousand"},
	}
	enValues = func() map[string]uint64 {
		m := make(map[string]uint64)
		for i, w := range enOnes {
			m[w] = uint64(i)
		}
		for i, w := range enTens {
			if w != "" {
				m[w] = uint64(i * 10)
			}
		}
		return m
	}()
)

type english struct{}

func (english) point() string { return "point" }

func (e english) cardinal(n uint64) string {
	if n < 100 {
		return enBelowHundred(n)
	}

	var parts []string
	for _, s := range enScales {
		if n >= s.value {
			parts = append(parts, e.cardinal(n/s.value)+" "+s.name)
			n %= s.value
		}
	}
	if n >= 100 {
		parts = append(parts, enOnes[n/100]+" hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, "and", enBelowHundred(n))
	}
	return strings.Join(parts, " ")
}

func enBelowHundred(n uint64) string {
	if n < 20 {
		return enOnes[n]
	}
	if n%10 == 0 {
		return enTens[n/10]
	}
	return enTens[n/10] + "-" + enOnes[n%10]
}

func (english) words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
}

func (english) parse(words []string) (uint64, bool) {
	var acc accumulator
	for _, w := range words {
		if w == "and" {
			continue
		}
		if v, ok := enValues[w]; ok {
			acc.add(v)
			continue
		}
		if w == "hundred" {
			acc.multiply(100)
			continue
		}
		found := false
		for _, s := range enScales {
			if w == s.name {
				acc.scale(s.value)
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return acc.value()
}
