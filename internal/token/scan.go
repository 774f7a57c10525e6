package token

import (
	"unicode"
	"unicode/utf8"
)

// Pattern selects one of the numeric sub-patterns
type Pattern int

const (
	// PhrasePattern matches a decimal number or a phrase of one to three
	// whitespace separated words
	PhrasePattern Pattern = iota
	// DecimalPattern matches a decimal number with an optional '.' or ','
	// separator
	DecimalPattern
)

// Span is a half-open byte interval of a match
type Span struct {
	Start, End int
}

// IsWordRune reports whether r is a word character: letters, combining
// marks, numbers and the underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

// IsDigit reports whether r is a decimal digit in any script
func IsDigit(r rune) bool {
	return unicode.Is(unicode.Nd, r)
}

// FindAll returns the non-overlapping matches of p in s, scanning left to
// right. A match starts and ends on a word boundary.
func FindAll(p Pattern, s string) []Span {
	var spans []Span
	for i := 0; i < len(s); {
		if atWordStart(s, i) {
			var end int
			var ok bool
			if p == DecimalPattern {
				end, ok = matchDecimal(s, i)
			} else {
				end, ok = matchPhrase(s, i)
			}
			if ok {
				spans = append(spans, Span{Start: i, End: end})
				i = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return spans
}

// ReplaceAll substitutes every match of p in s with repl(match)
func ReplaceAll(p Pattern, s string, repl func(string) string) string {
	spans := FindAll(p, s)
	if len(spans) == 0 {
		return s
	}

	out := make([]byte, 0, len(s))
	last := 0
	for _, sp := range spans {
		out = append(out, s[last:sp.Start]...)
		out = append(out, repl(s[sp.Start:sp.End])...)
		last = sp.End
	}
	out = append(out, s[last:]...)
	return string(out)
}

// matchDecimal matches digits, optionally followed by a separator and more
// digits, ending on a word boundary. The fractional part is dropped when it
// would not end on a boundary.
func matchDecimal(s string, i int) (int, bool) {
	if !atWordStart(s, i) {
		return 0, false
	}
	intEnd := skipDigits(s, i)
	if intEnd == i {
		return 0, false
	}

	if intEnd < len(s) && (s[intEnd] == '.' || s[intEnd] == ',') {
		fracEnd := skipDigits(s, intEnd+1)
		if fracEnd > intEnd+1 && atWordEnd(s, fracEnd) {
			return fracEnd, true
		}
	}
	if atWordEnd(s, intEnd) {
		return intEnd, true
	}
	return 0, false
}

// matchPhrase tries a decimal number first, then up to three words joined
// by runs of whitespace.
func matchPhrase(s string, i int) (int, bool) {
	if end, ok := matchDecimal(s, i); ok {
		return end, true
	}
	if !atWordStart(s, i) {
		return 0, false
	}

	end := skipWord(s, i)
	for n := 0; n < 2; n++ {
		next := skipSpace(s, end)
		if next == end {
			break
		}
		wordEnd := skipWord(s, next)
		if wordEnd == next {
			break
		}
		end = wordEnd
	}
	return end, true
}

func atWordStart(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	if !IsWordRune(r) {
		return false
	}
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	return !IsWordRune(prev)
}

func atWordEnd(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !IsWordRune(r)
}

func skipDigits(s string, i int) int {
	return skipWhile(s, i, IsDigit)
}

func skipWord(s string, i int) int {
	return skipWhile(s, i, IsWordRune)
}

func skipSpace(s string, i int) int {
	return skipWhile(s, i, unicode.IsSpace)
}

func skipWhile(s string, i int, f func(rune) bool) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !f(r) {
			break
		}
		i += size
	}
	return i
}
