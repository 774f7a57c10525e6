package numwords

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

var (
	// ErrUnsupportedLanguage is returned for languages without a speller
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrNotANumber is returned when text is not a numeral or written number
	ErrNotANumber = errors.New("not a number")
)

// ConversionError reports a failed spelling or parse
type ConversionError struct {
	Lang string
	Text string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %q (%s): %v", e.Text, e.Lang, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// speller renders and reads numbers in one language
type speller interface {
	cardinal(n uint64) string
	point() string
	// parse reads a written-out integer from normalized words
	parse(words []string) (uint64, bool)
	// words splits normalized text into number words
	words(text string) []string
}

// Converter spells numbers in every registered language
type Converter struct {
	spellers map[string]speller
}

// New creates a converter with all supported languages
func New() *Converter {
	return &Converter{
		spellers: map[string]speller{
			"ar": newArabic(),
			"en": english{},
			"fa": newPersian(),
			"hi": newHindi(),
		},
	}
}

// Languages returns the supported language codes in sorted order
func (c *Converter) Languages() []string {
	langs := make([]string, 0, len(c.spellers))
	for l := range c.spellers {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Supports reports whether lang, or its base language, has a speller
func (c *Converter) Supports(lang string) bool {
	_, ok := c.spellers[BaseLanguage(lang)]
	return ok
}

// Spell renders n as words in lang. Fraction digits are read one by one.
func (c *Converter) Spell(n Number, lang string) (string, error) {
	sp, ok := c.spellers[BaseLanguage(lang)]
	if !ok {
		return "", &ConversionError{Lang: lang, Text: n.String(), Err: ErrUnsupportedLanguage}
	}

	var parts []string
	if n.Digits != "" {
		for _, d := range n.Digits {
			parts = append(parts, sp.cardinal(uint64(d-'0')))
		}
	} else {
		parts = append(parts, sp.cardinal(n.Integer))
	}
	if n.Fraction == "" {
		return strings.Join(parts, " "), nil
	}

	parts = append(parts, sp.point())
	for _, d := range n.Fraction {
		parts = append(parts, sp.cardinal(uint64(d-'0')))
	}
	return strings.Join(parts, " "), nil
}

// Parse reads a number written out in words of lang
func (c *Converter) Parse(text, lang string) (Number, error) {
	sp, ok := c.spellers[BaseLanguage(lang)]
	if !ok {
		return Number{}, &ConversionError{Lang: lang, Text: text, Err: ErrUnsupportedLanguage}
	}

	words := sp.words(text)
	intWords, fracWords := words, []string(nil)
	for i, w := range words {
		if w == sp.point() {
			intWords, fracWords = words[:i], words[i+1:]
			if len(fracWords) == 0 {
				return Number{}, &ConversionError{Lang: lang, Text: text, Err: ErrNotANumber}
			}
			break
		}
	}

	v, ok := sp.parse(intWords)
	if !ok {
		return Number{}, &ConversionError{Lang: lang, Text: text, Err: ErrNotANumber}
	}

	var frac strings.Builder
	for _, w := range fracWords {
		d, ok := sp.parse([]string{w})
		if !ok || d > 9 {
			return Number{}, &ConversionError{Lang: lang, Text: text, Err: ErrNotANumber}
		}
		frac.WriteByte(byte('0' + d))
	}
	return Number{Integer: v, Fraction: frac.String()}, nil
}

// BaseLanguage reduces a BCP 47 tag such as "en-US" to its base language
func BaseLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}

// accumulator folds a sequence of number words into a value using the
// usual "small numbers, multipliers, scales" grammar.
type accumulator struct {
	total, current uint64
	seen           bool
	overflow       bool
	// bare is set by a hundred or scale word that has nothing to multiply
	bare bool
}

func (a *accumulator) add(v uint64) {
	a.current = a.addChecked(a.current, v)
	a.seen = true
}

func (a *accumulator) multiply(m uint64) {
	if a.current == 0 {
		if !a.seen {
			a.bare = true
		}
		a.current = 1
	}
	a.current = a.mulChecked(a.current, m)
	a.seen = true
}

func (a *accumulator) scale(s uint64) {
	if a.current == 0 {
		if !a.seen {
			a.bare = true
		}
		a.current = 1
	}
	a.total = a.addChecked(a.total, a.mulChecked(a.current, s))
	a.current = 0
	a.seen = true
}

func (a *accumulator) value() (uint64, bool) {
	v := a.addChecked(a.total, a.current)
	return v, a.seen && !a.overflow && !a.bare
}

func (a *accumulator) addChecked(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		a.overflow = true
	}
	return sum
}

func (a *accumulator) mulChecked(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		a.overflow = true
	}
	return lo
}
