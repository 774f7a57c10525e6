// Package rewrite applies the normalization pipeline to one payload: joiner
// removal, transliteration and number spelling, punctuation removal,
// extra-character removal and the Unicode range sieve, in that order.
//
// Failures of the transliteration and number spelling capabilities never
// escape a Rewriter. The affected text is kept as it was, a warning is
// logged and the failure is counted in the Result.
package rewrite
