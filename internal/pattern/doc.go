// Package pattern compiles the character classes of the normalization
// document into single-character matchers: joiners, punctuation (conditioned
// on the target language), characters to strip and the Unicode ranges that
// make up the target script.
package pattern
