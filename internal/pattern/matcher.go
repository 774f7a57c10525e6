package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// CharMatcher tests whether a single character belongs to a compiled class.
// The zero value matches nothing.
type CharMatcher struct {
	class string
	re    *regexp.Regexp
}

func newCharMatcher(class string) (*CharMatcher, error) {
	if class == "" {
		return &CharMatcher{}, nil
	}
	re, err := regexp.Compile("^[" + class + "]$")
	if err != nil {
		return nil, fmt.Errorf("invalid character class [%s]: %w", class, err)
	}
	return &CharMatcher{class: class, re: re}, nil
}

// MatchRune reports whether r belongs to the class
func (m *CharMatcher) MatchRune(r rune) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(string(r))
}

// Empty reports whether the class has no members
func (m *CharMatcher) Empty() bool {
	return m == nil || m.re == nil
}

// String returns the class in regexp syntax
func (m *CharMatcher) String() string {
	if m.Empty() {
		return "[]"
	}
	return "[" + m.class + "]"
}

// escapeClass renders every rune of chars as an escaped class member, so
// regexp metacharacters in the document are matched literally.
func escapeClass(chars []string) string {
	var b strings.Builder
	seen := make(map[rune]bool)
	for _, s := range chars {
		for _, r := range s {
			if seen[r] {
				continue
			}
			seen[r] = true
			fmt.Fprintf(&b, `\x{%X}`, r)
		}
	}
	return b.String()
}
