package transliteration

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoAPIKey is returned by backends that need a key and have none
	ErrNoAPIKey = errors.New("API key not configured")
	// ErrUnmappable is returned when the backend has no rendering for the input
	ErrUnmappable = errors.New("no transliteration available")
)

// Transliterator maps a Latin-script token into the script of lang
type Transliterator interface {
	Transliterate(ctx context.Context, text, lang string) (string, error)

	// Name returns the backend name
	Name() string
}

// TransliterationError reports a failed call for one token
type TransliterationError struct {
	Backend string
	Text    string
	Lang    string
	Err     error
}

func (e *TransliterationError) Error() string {
	return fmt.Sprintf("%s: transliterate %q to %s: %v", e.Backend, e.Text, e.Lang, e.Err)
}

func (e *TransliterationError) Unwrap() error {
	return e.Err
}

// Config selects and tunes a backend
type Config struct {
	Backend  string // "inputtools", "openai", "gemini" or "none"
	Model    string
	Endpoint string
	Timeout  time.Duration

	OpenAIKey string
	GeminiKey string

	// Persistent cache, disabled when empty
	CachePath string

	BreakerMaxFailures uint32
	BreakerCooldown    time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend:            "inputtools",
		Endpoint:           inputToolsURL,
		Timeout:            10 * time.Second,
		BreakerMaxFailures: 5,
		BreakerCooldown:    30 * time.Second,
	}
}

// New creates the configured backend, wrapped in a circuit breaker when it
// is remote and in a memory cache (plus SQLite when CachePath is set). The
// returned close function releases the persistent cache.
func New(ctx context.Context, config *Config) (Transliterator, func() error, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var backend Transliterator
	switch config.Backend {
	case "inputtools", "":
		backend = NewInputToolsBackend(config.Endpoint, config.Timeout)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, nil, fmt.Errorf("openai backend: %w", ErrNoAPIKey)
		}
		backend = NewOpenAIBackend(config.OpenAIKey, config.Model)
	case "gemini":
		if config.GeminiKey == "" {
			return nil, nil, fmt.Errorf("gemini backend: %w", ErrNoAPIKey)
		}
		g, err := NewGeminiBackend(ctx, config.GeminiKey, config.Model)
		if err != nil {
			return nil, nil, err
		}
		backend = g
	case "none":
		return None{}, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown transliteration backend: %s", config.Backend)
	}

	backend = NewBreaker(backend, config.BreakerMaxFailures, config.BreakerCooldown)
	if config.Timeout > 0 {
		backend = withTimeout{next: backend, timeout: config.Timeout}
	}

	closeFn := func() error { return nil }
	var store Store = NewMemoryCache()
	if config.CachePath != "" {
		sqlite, err := OpenSQLiteCache(config.CachePath)
		if err != nil {
			return nil, nil, err
		}
		store = NewTieredCache(NewMemoryCache(), sqlite)
		closeFn = sqlite.Close
	}

	return NewCached(backend, store), closeFn, nil
}

// None leaves every token unchanged
type None struct{}

// Transliterate returns text unchanged
func (None) Transliterate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// Name returns the backend name
func (None) Name() string {
	return "none"
}

type withTimeout struct {
	next    Transliterator
	timeout time.Duration
}

func (w withTimeout) Transliterate(ctx context.Context, text, lang string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	return w.next.Transliterate(ctx, text, lang)
}

func (w withTimeout) Name() string {
	return w.next.Name()
}
