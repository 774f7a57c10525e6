package numwords

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSpell_English(t *testing.T) {
	c := New()

	tests := []struct {
		n    Number
		want string
	}{
		{Int(0), "zero"},
		{Int(5), "five"},
		{Int(13), "thirteen"},
		{Int(40), "forty"},
		{Int(42), "forty-two"},
		{Int(100), "one hundred"},
		{Int(123), "one hundred and twenty-three"},
		{Int(1005), "one thousand and five"},
		{Int(1234), "one thousand two hundred and thirty-four"},
		{Int(2_000_000), "two million"},
		{Number{Integer: 3, Fraction: "14"}, "three point one four"},
		{Number{Integer: 1, Fraction: "05"}, "one point zero five"},
	}

	for _, tt := range tests {
		got, err := c.Spell(tt.n, "en")
		if err != nil {
			t.Errorf("Spell(%v) error = %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Spell(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpell_Hindi(t *testing.T) {
	c := New()

	tests := []struct {
		n    Number
		want string
	}{
		{Int(0), "शून्य"},
		{Int(5), "पाँच"},
		{Int(42), "बयालीस"},
		{Int(99), "निन्यानबे"},
		{Int(100), "एक सौ"},
		{Int(250), "दो सौ पचास"},
		{Int(1999), "एक हज़ार नौ सौ निन्यानबे"},
		{Int(150_000), "एक लाख पचास हज़ार"},
		{Int(25_000_000), "दो करोड़ पचास लाख"},
		{Number{Integer: 2, Fraction: "5"}, "दो दशमलव पाँच"},
	}

	for _, tt := range tests {
		got, err := c.Spell(tt.n, "hi")
		if err != nil {
			t.Errorf("Spell(%v) error = %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Spell(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpell_Arabic(t *testing.T) {
	c := New()

	tests := []struct {
		n    Number
		want string
	}{
		{Int(0), "صفر"},
		{Int(3), "ثلاثة"},
		{Int(12), "اثنا عشر"},
		{Int(15), "خمسة عشر"},
		{Int(21), "واحد وعشرون"},
		{Int(200), "مئتان"},
		{Int(1000), "ألف"},
		{Int(2000), "ألفان"},
		{Int(3250), "ثلاثة آلاف ومئتان وخمسون"},
		{Int(11_000), "أحد عشر ألف"},
		{Number{Integer: 1, Fraction: "5"}, "واحد فاصلة خمسة"},
	}

	for _, tt := range tests {
		got, err := c.Spell(tt.n, "ar")
		if err != nil {
			t.Errorf("Spell(%v) error = %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Spell(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpell_Persian(t *testing.T) {
	c := New()

	tests := []struct {
		n    Number
		want string
	}{
		{Int(0), "صفر"},
		{Int(9), "نه"},
		{Int(25), "بیست و پنج"},
		{Int(100), "یکصد"},
		{Int(1234), "یک هزار و دویست و سی و چهار"},
		{Int(2_000_000), "دو میلیون"},
		{Number{Integer: 3, Fraction: "14"}, "سه ممیز یک چهار"},
	}

	for _, tt := range tests {
		got, err := c.Spell(tt.n, "fa")
		if err != nil {
			t.Errorf("Spell(%v) error = %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Spell(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpell_WideNumeralReadDigitByDigit(t *testing.T) {
	n, err := ParseNumeral("12345678901234567890123")
	if err != nil {
		t.Fatalf("ParseNumeral() error = %v", err)
	}

	got, err := New().Spell(n, "en")
	if err != nil {
		t.Fatalf("Spell() error = %v", err)
	}
	want := "one two three four five six seven eight nine zero one two three four five six seven eight nine zero one two three"
	if got != want {
		t.Errorf("Spell() = %q, want %q", got, want)
	}

	got, err = New().Spell(Number{Digits: "100000000000000000000", Fraction: "5"}, "hi")
	if err != nil {
		t.Fatalf("Spell() error = %v", err)
	}
	if !strings.HasPrefix(got, "एक शून्य") || !strings.HasSuffix(got, "शून्य दशमलव पाँच") {
		t.Errorf("Spell() = %q", got)
	}
}

func TestSpell_RegionTag(t *testing.T) {
	got, err := New().Spell(Int(7), "en-GB")
	if err != nil {
		t.Fatalf("Spell() error = %v", err)
	}
	if got != "seven" {
		t.Errorf("Spell(7, en-GB) = %q, want seven", got)
	}
}

func TestSpell_UnsupportedLanguage(t *testing.T) {
	_, err := New().Spell(Int(5), "ta")

	var cerr *ConversionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConversionError, got %v", err)
	}
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestParse(t *testing.T) {
	c := New()

	tests := []struct {
		text string
		lang string
		want Number
	}{
		{"five", "en", Int(5)},
		{"Twenty-One", "en", Int(21)},
		{"one hundred and five", "en", Int(105)},
		{"three thousand two hundred", "en", Int(3200)},
		{"two point five", "en", Number{Integer: 2, Fraction: "5"}},
		{"पाँच", "hi", Int(5)},
		{"पांच", "hi", Int(5)},
		{"दो सौ पचास", "hi", Int(250)},
		{"एक लाख पचास हजार", "hi", Int(150_000)},
		{"तीन दशमलव एक", "hi", Number{Integer: 3, Fraction: "1"}},
		{"ألف", "ar", Int(1000)},
		{"ثلاثة عشر", "ar", Int(13)},
		{"خمسة و عشرون", "ar", Int(25)},
		{"مائة ألف", "ar", Int(100_000)},
		{"یکصد و بیست", "fa", Int(120)},
		{"پنج صد", "fa", Int(500)},
		{"سه هزار", "fa", Int(3000)},
	}

	for _, tt := range tests {
		got, err := c.Parse(tt.text, tt.lang)
		if err != nil {
			t.Errorf("Parse(%q, %s) error = %v", tt.text, tt.lang, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q, %s) = %v, want %v", tt.text, tt.lang, got, tt.want)
		}
	}
}

func TestParse_Failures(t *testing.T) {
	c := New()

	tests := []struct {
		text string
		lang string
	}{
		{"hello", "en"},
		{"", "en"},
		{"five apples", "en"},
		{"two point", "en"},
		{"two point twelve", "en"},
		{"नमस्ते", "hi"},
		{"five", "hi"},
		{"one hundred quintillion", "en"},
		{"hundred", "en"},
		{"thousand", "en"},
		{"हजार", "hi"},
		{"सौ", "hi"},
		{"लाख", "hi"},
		{"هزار", "fa"},
		{"صد", "fa"},
		{"آلاف", "ar"},
		{"ولد", "ar"},
	}

	for _, tt := range tests {
		if _, err := c.Parse(tt.text, tt.lang); !errors.Is(err, ErrNotANumber) {
			t.Errorf("Parse(%q, %s) error = %v, want ErrNotANumber", tt.text, tt.lang, err)
		}
	}
}

func TestSpellParseRoundTrip(t *testing.T) {
	c := New()
	for _, lang := range c.Languages() {
		for _, n := range []uint64{0, 7, 19, 58, 100, 101, 999, 1000, 4321, 100_000, 12_345_678} {
			words, err := c.Spell(Int(n), lang)
			if err != nil {
				t.Fatalf("Spell(%d, %s) error = %v", n, lang, err)
			}
			got, err := c.Parse(words, lang)
			if err != nil {
				t.Fatalf("Parse(%q, %s) error = %v", words, lang, err)
			}
			if got.Integer != n {
				t.Errorf("%s: Parse(Spell(%d)) = %d", lang, n, got.Integer)
			}
		}
	}
}

func TestLanguages(t *testing.T) {
	if got := New().Languages(); !reflect.DeepEqual(got, []string{"ar", "en", "fa", "hi"}) {
		t.Errorf("Languages() = %v", got)
	}
}

func TestSupports(t *testing.T) {
	c := New()
	tests := []struct {
		lang string
		want bool
	}{
		{"en", true},
		{"en-IN", true},
		{"hi", true},
		{"HI", true},
		{"ar", true},
		{"fa-IR", true},
		{"ta", false},
		{"ur", false},
	}
	for _, tt := range tests {
		if got := c.Supports(tt.lang); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}
