package numwords

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// hiBelowHundred lists 0-99; Hindi numerals below one hundred are not
// compositional.
var hiBelowHundred = [100]string{
	"शून्य", "एक", "दो", "तीन", "चार", "पाँच", "छह", "सात", "आठ", "नौ",
	"दस", "ग्यारह", "बारह", "तेरह", "चौदह", "पंद्रह", "सोलह", "सत्रह", "अठारह", "उन्नीस",
	"बीस", "इक्कीस", "बाईस", "तेईस", "चौबीस", "पच्चीस", "छब्बीस", "सत्ताईस", "अट्ठाईस", "उनतीस",
	"तीस", "इकतीस", "बत्तीस", "तैंतीस", "चौंतीस", "पैंतीस", "छत्तीस", "सैंतीस", "अड़तीस", "उनतालीस",
	"चालीस", "इकतालीस", "बयालीस", "तैंतालीस", "चौवालीस", "पैंतालीस", "छियालीस", "सैंतालीस", "अड़तालीस", "उनचास",
	"पचास", "इक्यावन", "बावन", "तिरेपन", "चौवन", "पचपन", "छप्पन", "सत्तावन", "अट्ठावन", "उनसठ",
	"साठ", "इकसठ", "बासठ", "तिरेसठ", "चौंसठ", "पैंसठ", "छियासठ", "सड़सठ", "अड़सठ", "उनहत्तर",
	"सत्तर", "इकहत्तर", "बहत्तर", "तिहत्तर", "चौहत्तर", "पचहत्तर", "छिहत्तर", "सतहत्तर", "अठहत्तर", "उन्यासी",
	"अस्सी", "इक्यासी", "बयासी", "तिरासी", "चौरासी", "पचासी", "छियासी", "सत्तासी", "अट्ठासी", "नवासी",
	"नब्बे", "इक्यानबे", "बानबे", "तिरानबे", "चौरानबे", "पचानबे", "छियानबे", "सत्तानबे", "अट्ठानबे", "निन्यानबे",
}

// Indian numbering groups: lakh and crore instead of million.
var hiScales = []struct {
	value uint64
	name  string
}{
	{100_000_000_000, "खरब"},
	{1_000_000_000, "अरब"},
	{10_000_000, "करोड़"},
	{100_000, "लाख"},
	{1_000, "हज़ार"},
}

const hiHundred = "सौ"

type hindi struct {
	values map[string]uint64
	scales map[string]uint64
}

func newHindi() hindi {
	h := hindi{
		values: make(map[string]uint64),
		scales: make(map[string]uint64),
	}
	for i, w := range hiBelowHundred {
		h.values[norm.NFC.String(w)] = uint64(i)
	}
	// common spelling variants
	for w, v := range map[string]uint64{"पांच": 5, "छः": 6, "छे": 6} {
		h.values[norm.NFC.String(w)] = v
	}
	for _, s := range hiScales {
		h.scales[norm.NFC.String(s.name)] = s.value
	}
	h.scales[norm.NFC.String("हजार")] = 1_000
	h.scales[norm.NFC.String("करोड")] = 10_000_000
	return h
}

func (hindi) point() string { return "दशमलव" }

func (h hindi) cardinal(n uint64) string {
	if n < 100 {
		return hiBelowHundred[n]
	}

	var parts []string
	for _, s := range hiScales {
		if n >= s.value {
			parts = append(parts, h.cardinal(n/s.value)+" "+s.name)
			n %= s.value
		}
	}
	if n >= 100 {
		parts = append(parts, hiBelowHundred[n/100]+" "+hiHundred)
		n %= 100
	}
	if n > 0 {
		parts = append(parts, hiBelowHundred[n])
	}
	return strings.Join(parts, " ")
}

func (hindi) words(text string) []string {
	return strings.FieldsFunc(norm.NFC.String(text), unicode.IsSpace)
}

func (h hindi) parse(words []string) (uint64, bool) {
	var acc accumulator
	for _, w := range words {
		if v, ok := h.values[w]; ok {
			acc.add(v)
			continue
		}
		if w == hiHundred {
			acc.multiply(100)
			continue
		}
		if v, ok := h.scales[w]; ok {
			acc.scale(v)
			continue
		}
		return 0, false
	}
	return acc.value()
}
