package token

import "strings"

// Category is the rewrite class of a segment
type Category int

const (
	// Literal segments pass through the transliteration stage unchanged
	Literal Category = iota
	// ScriptText segments start with a Latin letter and are transliterated
	ScriptText
	// Numeric segments are rewritten with spelled-out numbers
	Numeric
)

func (c Category) String() string {
	switch c {
	case ScriptText:
		return "script"
	case Numeric:
		return "numeric"
	default:
		return "literal"
	}
}

// Segments splits a payload on the literal space character. Tabs and other
// whitespace stay inside their segment.
func Segments(payload string) []string {
	return strings.Split(payload, " ")
}

// Join reassembles segments with a single space
func Join(segments []string) string {
	return strings.Join(segments, " ")
}

// Classify returns the category of a segment. The Latin check runs first;
// only non-Latin segments are tested against the numeric patterns.
func Classify(segment string) Category {
	if startsWithLatin(segment) {
		return ScriptText
	}
	if _, ok := matchDecimal(segment, 0); ok {
		return Numeric
	}
	if _, ok := matchPhrase(segment, 0); ok {
		return Numeric
	}
	return Literal
}

func startsWithLatin(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
