package transliteration

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker stops calling a failing backend for a cooldown period. Calls made
// while it is open fail fast with gobreaker.ErrOpenState.
type Breaker struct {
	next Transliterator
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next. The breaker opens after maxFailures consecutive
// failures and probes again after cooldown. ErrUnmappable answers do not
// count as failures.
func NewBreaker(next Transliterator, maxFailures uint32, cooldown time.Duration) *Breaker {
	if maxFailures == 0 {
		maxFailures = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    next.Name(),
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("transliteration breaker state change", "backend", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrUnmappable) || errors.Is(err, context.Canceled)
		},
	}

	return &Breaker{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the wrapped backend name
func (b *Breaker) Name() string {
	return b.next.Name()
}

// State returns the current breaker state
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Transliterate calls the wrapped backend unless the breaker is open
func (b *Breaker) Transliterate(ctx context.Context, text, lang string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Transliterate(ctx, text, lang)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &TransliterationError{Backend: b.Name(), Text: text, Lang: lang, Err: err}
		}
		return "", err
	}
	return result.(string), nil
}
