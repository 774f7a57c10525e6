// Package transliteration renders Latin-script tokens in the script of a
// target language. Backends are Google Input Tools, OpenAI and Gemini; remote
// backends run behind a circuit breaker and results can be cached in memory
// or in SQLite.
package transliteration
