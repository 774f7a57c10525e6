// Package numwords spells numbers out as words and reads written-out numbers
// back. English and Hindi are supported; digits of every script are
// accepted on input.
package numwords
