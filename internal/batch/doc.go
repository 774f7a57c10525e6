// Package batch streams an input file through a rewriter, line by line, and
// writes the surviving records to the output file.
package batch
