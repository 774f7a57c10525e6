package transliteration

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache persists transliterations across runs
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (or creates) the cache database at path
func OpenSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open transliteration cache: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS transliterations (
		lang       TEXT NOT NULL,
		source     TEXT NOT NULL,
		target     TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (lang, source)
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create transliterations table: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

// Close closes the database
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Get returns the stored transliteration of source in lang
func (c *SQLiteCache) Get(lang, source string) (string, bool) {
	var target string
	err := c.db.QueryRow(`SELECT target FROM transliterations WHERE lang = ? AND source = ?`, lang, source).Scan(&target)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("transliteration cache lookup failed", "lang", lang, "source", source, "error", err)
		}
		return "", false
	}
	return target, true
}

// Add stores or replaces a transliteration
func (c *SQLiteCache) Add(lang, source, target string) error {
	const q = `INSERT INTO transliterations (lang, source, target, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(lang, source) DO UPDATE SET target = excluded.target, updated_at = excluded.updated_at`

	if _, err := c.db.Exec(q, lang, source, target, time.Now().Unix()); err != nil {
		return fmt.Errorf("store transliteration %q: %w", source, err)
	}
	return nil
}

// Count returns the number of stored entries
func (c *SQLiteCache) Count() (int, error) {
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM transliterations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transliterations: %w", err)
	}
	return n, nil
}
