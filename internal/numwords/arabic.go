package numwords

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Arabic numbers are rendered in the masculine nominative form.
var (
	arOnes = []string{
		"صفر", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة", "عشرة",
	}
	arTens = []string{
		"", "", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
	}
	arHundreds = []string{
		"", "مائة", "مئتان", "ثلاثمائة", "أربعمائة", "خمسمائة", "ستمائة", "سبعمائة", "ثمانمائة", "تسعمائة",
	}
	// Each scale has a singular, a dual and a plural used after three to ten.
	arScales = []struct {
		value                  uint64
		singular, dual, plural string
	}{
		{1_000_000_000_000_000_000, "كوينتليون", "كوينتليونان", "كوينتليونات"},
		{1_000_000_000_000_000, "كوادريليون", "كوادريليونان", "كوادريليونات"},
		{1_000_000_000_000, "تريليون", "تريليونان", "تريليونات"},
		{1_000_000_000, "مليار", "ملياران", "مليارات"},
		{1_000_000, "مليون", "مليونان", "ملايين"},
		{1_000, "ألف", "ألفان", "آلاف"},
	}
)

const arAnd = "و"

type arabic struct {
	values   map[string]uint64
	singular map[string]uint64
	dual     map[string]uint64
	plural   map[string]uint64
}

func newArabic() arabic {
	a := arabic{
		values:   make(map[string]uint64),
		singular: make(map[string]uint64),
		dual:     make(map[string]uint64),
		plural:   make(map[string]uint64),
	}
	for i, w := range arOnes {
		a.values[norm.NFC.String(w)] = uint64(i)
	}
	for i, w := range arTens {
		if w != "" {
			a.values[norm.NFC.String(w)] = uint64(i * 10)
		}
	}
	for i, w := range arHundreds {
		if w != "" {
			a.values[norm.NFC.String(w)] = uint64(i * 100)
		}
	}
	// teen forms and common spelling variants
	for w, v := range map[string]uint64{
		"أحد": 1, "اثنا": 2, "اثنين": 2, "عشر": 10, "مئة": 100, "مئتين": 200,
	} {
		a.values[norm.NFC.String(w)] = v
	}
	for _, s := range arScales {
		a.singular[norm.NFC.String(s.singular)] = s.value
		a.dual[norm.NFC.String(s.dual)] = s.value
		a.plural[norm.NFC.String(s.plural)] = s.value
	}
	a.dual[norm.NFC.String("ألفين")] = 1_000
	a.dual[norm.NFC.String("مليونين")] = 1_000_000
	return a
}

func (arabic) point() string { return "فاصلة" }

func (a arabic) cardinal(n uint64) string {
	if n == 0 {
		return arOnes[0]
	}

	var parts []string
	for _, s := range arScales {
		q := n / s.value
		if q == 0 {
			continue
		}
		switch {
		case q == 1:
			parts = append(parts, s.singular)
		case q == 2:
			parts = append(parts, s.dual)
		case q <= 10:
			parts = append(parts, a.cardinal(q)+" "+s.plural)
		default:
			parts = append(parts, a.cardinal(q)+" "+s.singular)
		}
		n %= s.value
	}
	if n >= 100 {
		parts = append(parts, arHundreds[n/100])
		n %= 100
	}
	if n > 0 {
		parts = append(parts, arBelowHundred(n))
	}
	return strings.Join(parts, " "+arAnd)
}

func arBelowHundred(n uint64) string {
	switch {
	case n <= 10:
		return arOnes[n]
	case n == 11:
		return "أحد عشر"
	case n == 12:
		return "اثنا عشر"
	case n < 20:
		return arOnes[n-10] + " عشر"
	case n%10 == 0:
		return arTens[n/10]
	}
	return arOnes[n%10] + " " + arAnd + arTens[n/10]
}

func (arabic) words(text string) []string {
	return strings.FieldsFunc(norm.NFC.String(text), unicode.IsSpace)
}

// parse reads masculine and common genitive forms. The conjunction is
// either a word of its own or a prefix of the next word.
func (a arabic) parse(words []string) (uint64, bool) {
	var acc accumulator
	for _, w := range words {
		if w == arAnd {
			continue
		}
		if !a.apply(&acc, w) {
			rest, ok := strings.CutPrefix(w, arAnd)
			if !ok || !a.apply(&acc, rest) {
				return 0, false
			}
		}
	}
	return acc.value()
}

func (a arabic) apply(acc *accumulator, w string) bool {
	if v, ok := a.values[w]; ok {
		acc.add(v)
		return true
	}
	// A singular scale word counts one of itself on its own.
	if v, ok := a.singular[w]; ok {
		if acc.current == 0 {
			acc.add(1)
		}
		acc.scale(v)
		return true
	}
	if v, ok := a.dual[w]; ok {
		acc.add(2)
		acc.scale(v)
		return true
	}
	if v, ok := a.plural[w]; ok {
		acc.scale(v)
		return true
	}
	return false
}
