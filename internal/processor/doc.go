// Package processor contains the core orchestration of a textprep run. It
// loads the normalization document, compiles the matchers, sets up the
// transliteration and number spelling capabilities, and drives the batch
// runner over the input file.
package processor
