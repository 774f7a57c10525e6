package rewrite

import (
	"context"
	"log/slog"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"codeberg.org/snonux/textprep/internal/numwords"
	"codeberg.org/snonux/textprep/internal/pattern"
	"codeberg.org/snonux/textprep/internal/token"
	"codeberg.org/snonux/textprep/internal/transliteration"
)

// Speller spells numbers and reads written-out numbers
type Speller interface {
	Spell(n numwords.Number, lang string) (string, error)
	Parse(text, lang string) (numwords.Number, error)
	Languages() []string
}

// Result is a rewritten payload
type Result struct {
	Text string
	// Fallbacks counts capability calls that failed and kept their input
	Fallbacks int
}

// Rewriter runs the pipeline for one target language
type Rewriter struct {
	matchers       *pattern.Matchers
	transliterator transliteration.Transliterator
	speller        Speller
	logger         *slog.Logger

	removeJoiners     transform.Transformer
	removePunctuation transform.Transformer
	removeCharacters  transform.Transformer
	sieve             transform.Transformer
}

// Option configures a Rewriter
type Option func(*Rewriter)

// WithLogger sets the logger used for fallback warnings
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rewriter) {
		r.logger = logger
	}
}

// New creates a Rewriter for matchers.Lang
func New(matchers *pattern.Matchers, tr transliteration.Transliterator, sp Speller, opts ...Option) *Rewriter {
	r := &Rewriter{
		matchers:       matchers,
		transliterator: tr,
		speller:        sp,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.removeJoiners = runes.Remove(runes.Predicate(matchers.Joiners.MatchRune))
	r.removePunctuation = runes.Remove(runes.Predicate(matchers.Punctuation.MatchRune))
	r.removeCharacters = runes.Remove(runes.Predicate(matchers.Characters.MatchRune))
	r.sieve = runes.Remove(runes.Predicate(func(c rune) bool {
		return !unicode.IsSpace(c) && !matchers.Script.MatchRune(c)
	}))
	return r
}

// Lang returns the target language
func (r *Rewriter) Lang() string {
	return r.matchers.Lang
}

// Rewrite applies all five stages to payload
func (r *Rewriter) Rewrite(ctx context.Context, payload string) Result {
	text := r.RemoveJoiners(payload)
	text, fallbacks := r.RewriteSegments(ctx, text)
	text = r.RemovePunctuation(text)
	text = r.RemoveCharacters(text)
	text = r.Sieve(text)
	return Result{Text: text, Fallbacks: fallbacks}
}

// RemoveJoiners deletes every joiner character
func (r *Rewriter) RemoveJoiners(s string) string {
	return apply(r.removeJoiners, s)
}

// RemovePunctuation deletes the punctuation of the target language
func (r *Rewriter) RemovePunctuation(s string) string {
	return apply(r.removePunctuation, s)
}

// RemoveCharacters deletes the configured extra characters
func (r *Rewriter) RemoveCharacters(s string) string {
	return apply(r.removeCharacters, s)
}

// Sieve keeps whitespace and characters in the target script ranges
func (r *Rewriter) Sieve(s string) string {
	return apply(r.sieve, s)
}

// RewriteSegments transliterates Latin segments and spells numeric ones.
// Segments are rejoined with single spaces.
func (r *Rewriter) RewriteSegments(ctx context.Context, s string) (string, int) {
	segments := token.Segments(s)
	fallbacks := 0

	for i, seg := range segments {
		var fellBack bool
		switch token.Classify(seg) {
		case token.ScriptText:
			segments[i], fellBack = r.transliterate(ctx, seg)
			if fellBack {
				fallbacks++
			}
		case token.Numeric:
			var n int
			segments[i], n = r.spellSegment(seg)
			fallbacks += n
		}
	}

	return token.Join(segments), fallbacks
}

// transliterate returns the backend rendering of seg, or seg itself and
// true when the backend fails.
func (r *Rewriter) transliterate(ctx context.Context, seg string) (string, bool) {
	out, err := r.transliterator.Transliterate(ctx, seg, r.Lang())
	if err != nil {
		r.logger.Warn("transliteration failed, keeping segment", "segment", seg, "lang", r.Lang(), "error", err)
		return seg, true
	}
	return out, false
}

func apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		// runes.Remove does not fail on complete input
		return s
	}
	return out
}
