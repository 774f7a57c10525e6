package transliteration

import (
	"context"
	"log/slog"
	"sync"
)

// Store keeps finished transliterations keyed by language and source token
type Store interface {
	Get(lang, source string) (string, bool)
	Add(lang, source, target string) error
}

type cacheKey struct {
	lang   string
	source string
}

// MemoryCache stores transliterations in memory for a run
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]string
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[cacheKey]string),
	}
}

// Add adds a transliteration to the cache
func (c *MemoryCache) Add(lang, source, target string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{lang, source}] = target
	return nil
}

// Get retrieves a transliteration from the cache
func (c *MemoryCache) Get(lang, source string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	target, ok := c.entries[cacheKey{lang, source}]
	return target, ok
}

// GetAll returns a copy of the cached transliterations for lang
func (c *MemoryCache) GetAll(lang string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string)
	for k, v := range c.entries {
		if k.lang == lang {
			result[k.source] = v
		}
	}
	return result
}

// Len returns the number of cached entries
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TieredCache reads through a fast store in front of a slow one
type TieredCache struct {
	fast Store
	slow Store
}

// NewTieredCache creates a cache that checks fast before slow and promotes
// slow hits into fast.
func NewTieredCache(fast, slow Store) *TieredCache {
	return &TieredCache{fast: fast, slow: slow}
}

// Get looks up fast, then slow
func (c *TieredCache) Get(lang, source string) (string, bool) {
	if target, ok := c.fast.Get(lang, source); ok {
		return target, true
	}
	target, ok := c.slow.Get(lang, source)
	if ok {
		_ = c.fast.Add(lang, source, target)
	}
	return target, ok
}

// Add writes to both stores
func (c *TieredCache) Add(lang, source, target string) error {
	if err := c.fast.Add(lang, source, target); err != nil {
		return err
	}
	return c.slow.Add(lang, source, target)
}

// Cached answers repeated tokens from a Store. Only successful results are
// stored.
type Cached struct {
	next  Transliterator
	store Store
}

// NewCached wraps next with store
func NewCached(next Transliterator, store Store) *Cached {
	return &Cached{next: next, store: store}
}

// Name returns the wrapped backend name
func (c *Cached) Name() string {
	return c.next.Name()
}

// Transliterate returns a cached result or calls the wrapped backend
func (c *Cached) Transliterate(ctx context.Context, text, lang string) (string, error) {
	if target, ok := c.store.Get(lang, text); ok {
		return target, nil
	}

	target, err := c.next.Transliterate(ctx, text, lang)
	if err != nil {
		return "", err
	}

	if err := c.store.Add(lang, text, target); err != nil {
		slog.Warn("failed to cache transliteration", "text", text, "lang", lang, "error", err)
	}
	return target, nil
}
