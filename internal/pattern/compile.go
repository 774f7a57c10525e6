package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/textprep/internal/config"
)

// Matchers is the immutable set of compiled classes for one run
type Matchers struct {
	Lang        string
	Joiners     *CharMatcher
	Punctuation *CharMatcher
	Characters  *CharMatcher
	Script      *CharMatcher
}

// Compile builds every matcher for the target language
func Compile(cfg *config.Config, lang string) (*Matchers, error) {
	joiners, err := CompileCharacterSet(cfg.NonSpaceJoiners)
	if err != nil {
		return nil, fmt.Errorf("non_space_joiners: %w", err)
	}
	punct, err := CompilePunctuation(cfg, lang)
	if err != nil {
		return nil, fmt.Errorf("punctuations: %w", err)
	}
	chars, err := CompileCharacterSet(cfg.Characters)
	if err != nil {
		return nil, fmt.Errorf("characters: %w", err)
	}
	script, err := CompileUnicodeRanges(cfg.UnicodeRanges, lang)
	if err != nil {
		return nil, fmt.Errorf("unicode_ranges.%s: %w", lang, err)
	}

	return &Matchers{
		Lang:        lang,
		Joiners:     joiners,
		Punctuation: punct,
		Characters:  chars,
		Script:      script,
	}, nil
}

// UsesArabicPunctuation reports whether lang strips the arabic category
func UsesArabicPunctuation(lang string) bool {
	switch lang {
	case "ar", "ur", "fa":
		return true
	}
	return false
}

// CompilePunctuation matches the general and hyphens categories, plus the
// arabic category for Arabic-script languages.
func CompilePunctuation(cfg *config.Config, lang string) (*CharMatcher, error) {
	var chars []string
	chars = append(chars, cfg.Punctuation(config.CategoryGeneral)...)
	chars = append(chars, cfg.Punctuation(config.CategoryHyphens)...)
	if UsesArabicPunctuation(lang) {
		chars = append(chars, cfg.Punctuation(config.CategoryArabic)...)
	}
	return CompileCharacterSet(chars)
}

// CompileCharacterSet matches any character literally present in chars
func CompileCharacterSet(chars []string) (*CharMatcher, error) {
	return newCharMatcher(escapeClass(chars))
}

// CompileUnicodeRanges joins the range specifiers configured for lang into a
// single class. A language without ranges yields a matcher that accepts
// nothing.
func CompileUnicodeRanges(ranges map[string][]string, lang string) (*CharMatcher, error) {
	specs := ranges[lang]
	var b strings.Builder
	for _, spec := range specs {
		frag, err := rangeFragment(spec)
		if err != nil {
			return nil, err
		}
		b.WriteString(frag)
	}
	return newCharMatcher(b.String())
}

var (
	pyEscape = regexp.MustCompile(`\\u([0-9A-Fa-f]{4})`)
	hexRange = regexp.MustCompile(`^(?:U\+|0x)?([0-9A-Fa-f]{4,6})(?:-(?:U\+|0x)?([0-9A-Fa-f]{4,6}))?$`)
)

// rangeFragment turns one specifier into a regexp class fragment. Accepted
// forms are bare hex intervals ("0900-097F", "U+0900-U+097F"), single hex
// codepoints, and raw class fragments, where \uXXXX escapes are rewritten to
// the regexp syntax.
func rangeFragment(spec string) (string, error) {
	if spec == "" {
		return "", fmt.Errorf("empty range specifier")
	}

	if m := hexRange.FindStringSubmatch(spec); m != nil {
		lo, err := parseCodepoint(m[1])
		if err != nil {
			return "", fmt.Errorf("range %q: %w", spec, err)
		}
		hi := lo
		if m[2] != "" {
			if hi, err = parseCodepoint(m[2]); err != nil {
				return "", fmt.Errorf("range %q: %w", spec, err)
			}
		}
		if lo > hi {
			return "", fmt.Errorf("range %q: start after end", spec)
		}
		if lo == hi {
			return fmt.Sprintf(`\x{%X}`, lo), nil
		}
		return fmt.Sprintf(`\x{%X}-\x{%X}`, lo, hi), nil
	}

	frag := pyEscape.ReplaceAllString(spec, `\x{$1}`)
	if _, err := regexp.Compile("[" + frag + "]"); err != nil {
		return "", fmt.Errorf("range %q: %w", spec, err)
	}
	return frag, nil
}

func parseCodepoint(hex string) (rune, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, err
	}
	if v > utf8.MaxRune {
		return 0, fmt.Errorf("codepoint %s out of range", hex)
	}
	return rune(v), nil
}
