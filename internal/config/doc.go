// Package config loads the normalization document: joiner characters,
// punctuation categories, characters to strip and the per-language
// Unicode ranges. The document is read once per run and never mutated.
package config
