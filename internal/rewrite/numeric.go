package rewrite

import (
	"errors"

	"codeberg.org/snonux/textprep/internal/numwords"
	"codeberg.org/snonux/textprep/internal/token"
)

// spellSegment rewrites the numbers in seg. The phrase pass runs first and
// the decimal pass reads its output. It returns the number of failed
// spelling calls.
func (r *Rewriter) spellSegment(seg string) (string, int) {
	fallbacks := 0
	repl := func(match string) string {
		out, fellBack := r.spellMatch(match)
		if fellBack {
			fallbacks++
		}
		return out
	}

	out := token.ReplaceAll(token.PhrasePattern, seg, repl)
	out = token.ReplaceAll(token.DecimalPattern, out, repl)
	return out, fallbacks
}

// spellMatch rewrites one match. A plain numeral is spelled whole. Otherwise
// the first digit run is spelled in place and the rest of the match is kept
// byte for byte. Text without digits is read as a written-out number in any
// supported language and spelled again in the target language, unless it is
// already written in the target language. It returns match and true when
// spelling fails.
func (r *Rewriter) spellMatch(match string) (string, bool) {
	if n, err := numwords.ParseNumeral(match); err == nil {
		return r.spell(match, n)
	}

	if start, end, ok := firstDigitRun(match); ok {
		n, err := numwords.ParseNumeral(match[start:end])
		if err != nil {
			r.logger.Warn("number conversion failed, keeping text", "text", match, "lang", r.Lang(), "error", err)
			return match, true
		}
		words, fellBack := r.spell(match, n)
		if fellBack {
			return match, true
		}
		return match[:start] + words + match[end:], false
	}

	target := numwords.BaseLanguage(r.Lang())
	for _, lang := range r.speller.Languages() {
		n, err := r.speller.Parse(match, lang)
		if err != nil {
			if !errors.Is(err, numwords.ErrNotANumber) {
				r.logger.Debug("number parse failed", "text", match, "lang", lang, "error", err)
			}
			continue
		}
		if numwords.BaseLanguage(lang) == target {
			return match, false
		}
		return r.spell(match, n)
	}
	return match, false
}

func (r *Rewriter) spell(match string, n numwords.Number) (string, bool) {
	words, err := r.speller.Spell(n, r.Lang())
	if err != nil {
		r.logger.Warn("number conversion failed, keeping text", "text", match, "lang", r.Lang(), "error", err)
		return match, true
	}
	return words, false
}

// firstDigitRun returns the byte span of the first run of decimal digits
func firstDigitRun(s string) (int, int, bool) {
	start := -1
	for i, c := range s {
		if token.IsDigit(c) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return start, i, true
		}
	}
	if start >= 0 {
		return start, len(s), true
	}
	return 0, 0, false
}
