package numwords

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	faOnes = []string{
		"صفر", "یک", "دو", "سه", "چهار", "پنج", "شش", "هفت", "هشت", "نه",
		"ده", "یازده", "دوازده", "سیزده", "چهارده", "پانزده", "شانزده", "هفده", "هجده", "نوزده",
	}
	faTens = []string{
		"", "", "بیست", "سی", "چهل", "پنجاه", "شصت", "هفتاد", "هشتاد", "نود",
	}
	faHundreds = []string{
		"", "یکصد", "دویست", "سیصد", "چهارصد", "پانصد", "ششصد", "هفتصد", "هشتصد", "نهصد",
	}
	faScales = []struct {
		value uint64
		name  string
	}{
		{1_000_000_000_000_000_000, "کوینتیلیون"},
		{1_000_000_000_000_000, "کوادریلیون"},
		{1_000_000_000_000, "تریلیون"},
		{1_000_000_000, "میلیارد"},
		{1_000_000, "میلیون"},
		{1_000, "هزار"},
	}
)

const (
	faAnd     = "و"
	faHundred = "صد"
)

type persian struct {
	values map[string]uint64
	scales map[string]uint64
}

func newPersian() persian {
	p := persian{
		values: make(map[string]uint64),
		scales: make(map[string]uint64),
	}
	for i, w := range faOnes {
		p.values[norm.NFC.String(w)] = uint64(i)
	}
	for i, w := range faTens {
		if w != "" {
			p.values[norm.NFC.String(w)] = uint64(i * 10)
		}
	}
	for i, w := range faHundreds {
		if w != "" {
			p.values[norm.NFC.String(w)] = uint64(i * 100)
		}
	}
	p.values[norm.NFC.String("هیجده")] = 18
	for _, s := range faScales {
		p.scales[norm.NFC.String(s.name)] = s.value
	}
	return p
}

func (persian) point() string { return "ممیز" }

func (p persian) cardinal(n uint64) string {
	if n < 20 {
		return faOnes[n]
	}

	var parts []string
	for _, s := range faScales {
		if n >= s.value {
			parts = append(parts, p.cardinal(n/s.value)+" "+s.name)
			n %= s.value
		}
	}
	if n >= 100 {
		parts = append(parts, faHundreds[n/100])
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, faTens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, faOnes[n])
	}
	return strings.Join(parts, " "+faAnd+" ")
}

func (persian) words(text string) []string {
	return strings.FieldsFunc(norm.NFC.String(text), unicode.IsSpace)
}

func (p persian) parse(words []string) (uint64, bool) {
	var acc accumulator
	for _, w := range words {
		if w == faAnd {
			continue
		}
		if v, ok := p.values[w]; ok {
			acc.add(v)
			continue
		}
		if w == faHundred {
			acc.multiply(100)
			continue
		}
		if v, ok := p.scales[w]; ok {
			acc.scale(v)
			continue
		}
		return 0, false
	}
	return acc.value()
}
